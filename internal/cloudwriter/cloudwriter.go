package cloudwriter

// Writer buffers object data and uploads it on Close.
type Writer interface {
	Write(data []byte) (int, error)
	Close() error
}

// Factory creates writers bound to a bucket and object path.
type Factory interface {
	NewWriter(bucket, objectPath string) (Writer, error)
}
