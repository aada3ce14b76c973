package simulator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jwkuo/bobasim/internal/cloudwriter"
	"github.com/jwkuo/bobasim/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// Typed parquet rows, one schema per topic.

type turnEventRow struct {
	Timestamp    int64   `parquet:"name=timestamp, type=INT64" json:"timestamp"`
	EventType    string  `parquet:"name=event_type, type=BYTE_ARRAY, convertedtype=UTF8" json:"eventType"`
	Day          int64   `parquet:"name=day, type=INT64" json:"day"`
	Turn         int64   `parquet:"name=turn, type=INT64" json:"turn"`
	Clock        string  `parquet:"name=clock, type=BYTE_ARRAY, convertedtype=UTF8" json:"clock"`
	Served       int64   `parquet:"name=served, type=INT64" json:"served"`
	LostQueue    int64   `parquet:"name=lost_queue, type=INT64" json:"lost_queue"`
	LostStock    int64   `parquet:"name=lost_stock, type=INT64" json:"lost_stock"`
	LostPatience int64   `parquet:"name=lost_patience, type=INT64" json:"lost_patience"`
	QueueLength  int64   `parquet:"name=queue_length, type=INT64" json:"queue_length"`
	Cash         float64 `parquet:"name=cash, type=DOUBLE" json:"cash"`
}

type saleEventRow struct {
	Timestamp int64   `parquet:"name=timestamp, type=INT64" json:"timestamp"`
	EventType string  `parquet:"name=event_type, type=BYTE_ARRAY, convertedtype=UTF8" json:"eventType"`
	Day       int64   `parquet:"name=day, type=INT64" json:"day"`
	Turn      int64   `parquet:"name=turn, type=INT64" json:"turn"`
	Clock     string  `parquet:"name=clock, type=BYTE_ARRAY, convertedtype=UTF8" json:"clock"`
	Drink     string  `parquet:"name=drink, type=BYTE_ARRAY, convertedtype=UTF8" json:"drink"`
	Price     float64 `parquet:"name=price, type=DOUBLE" json:"price"`
}

type daySummaryRow struct {
	Timestamp      int64   `parquet:"name=timestamp, type=INT64" json:"timestamp"`
	EventType      string  `parquet:"name=event_type, type=BYTE_ARRAY, convertedtype=UTF8" json:"eventType"`
	Day            int64   `parquet:"name=day, type=INT64" json:"day"`
	Served         int64   `parquet:"name=served, type=INT64" json:"served"`
	LostQueue      int64   `parquet:"name=lost_queue, type=INT64" json:"lost_queue"`
	LostStock      int64   `parquet:"name=lost_stock, type=INT64" json:"lost_stock"`
	LostPatience   int64   `parquet:"name=lost_patience, type=INT64" json:"lost_patience"`
	Revenue        float64 `parquet:"name=revenue, type=DOUBLE" json:"revenue"`
	Wages          float64 `parquet:"name=wages, type=DOUBLE" json:"wages"`
	Rent           float64 `parquet:"name=rent, type=DOUBLE" json:"rent"`
	IngredientCost float64 `parquet:"name=ingredient_cost, type=DOUBLE" json:"ingredient_cost"`
	AdSpend        float64 `parquet:"name=ad_spend, type=DOUBLE" json:"ad_spend"`
	LoanPayments   float64 `parquet:"name=loan_payments, type=DOUBLE" json:"loan_payments"`
	Profit         float64 `parquet:"name=profit, type=DOUBLE" json:"profit"`
	CashEnd        float64 `parquet:"name=cash_end, type=DOUBLE" json:"cash_end"`
	Bankrupt       bool    `parquet:"name=bankrupt, type=BOOLEAN" json:"bankrupt"`
}

// ParquetOutput writes one parquet file per topic, locally or to S3
// through the cloudwriter factory.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.Factory
	cloudBucketName    string
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "local" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3Factory(config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
			p.cloudBucketName = config.CloudStorage.BucketName
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
	}

	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	row, err := rowForTopic(topic, msg)
	if err != nil {
		return err
	}

	pw, ok := p.writers[topic]
	if !ok {
		pw, err = p.createWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create parquet writer for %s: %w", topic, err)
		}
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write %s event: %w", topic, err)
	}
	return nil
}

func (p *ParquetOutput) createWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error

	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, "data.parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, err
		}
		fw = newCloudParquetFile(cw)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder, topic)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
		if err != nil {
			return nil, err
		}
	}

	pw, err := writer.NewParquetWriter(fw, schemaForTopic(topic), 4)
	if err != nil {
		return nil, err
	}

	p.writers[topic] = pw
	p.files[topic] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = fmt.Errorf("failed to finalize parquet writer for %s: %w", topic, err)
		}
	}
	for topic, fw := range p.files {
		if err := fw.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close parquet file for %s: %w", topic, err)
		}
	}
	return lastErr
}

func schemaForTopic(topic string) interface{} {
	switch topic {
	case TopicSaleEvents:
		return new(saleEventRow)
	case TopicDaySummary:
		return new(daySummaryRow)
	default:
		return new(turnEventRow)
	}
}

func rowForTopic(topic string, msg []byte) (interface{}, error) {
	switch topic {
	case TopicSaleEvents:
		var row saleEventRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return nil, err
		}
		return row, nil
	case TopicDaySummary:
		var row daySummaryRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return nil, err
		}
		return row, nil
	default:
		var row turnEventRow
		if err := json.Unmarshal(msg, &row); err != nil {
			return nil, err
		}
		return row, nil
	}
}

// cloudParquetFile adapts a cloudwriter.Writer to the parquet source
// interface. Cloud objects are write-only streams; reads and seeks
// from the end are unsupported.
type cloudParquetFile struct {
	cloudWriter cloudwriter.Writer
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.Writer) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
