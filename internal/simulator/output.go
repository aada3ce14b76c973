package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/jwkuo/bobasim/internal/output"
)

// OutputDestination receives serialized simulation events, one topic
// per event family.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	out := fmt.Sprintf("[%s] %s\n", topic, string(msg))
	if _, err := os.Stdout.Write([]byte(out)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput appends one JSON line per event to a file per topic,
// partitioned by event date.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	fullPath, err := partitionPath(j.basePath, j.folder, topic, msg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, ok := j.files[fullPath]
	if !ok {
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		j.files[fullPath] = file
	}

	if _, err := file.Write(msg); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// CSVOutput writes one CSV file per topic partition, headers derived
// from the first event seen.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		headers:  make(map[string][]string),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	fullPath, err := partitionPath(c.basePath, c.folder, topic, msg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	csvWriter, ok := c.files[fullPath]
	if !ok {
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[fullPath] = csvWriter

		headers := sortedKeys(event)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[fullPath] = headers
	}

	row := make([]string, len(c.headers[fullPath]))
	for i, header := range c.headers[fullPath] {
		if value, ok := event[header]; ok {
			row[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := csvWriter.Write(row); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (c *CSVOutput) Close() error {
	for _, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
	}
	return nil
}

type KafkaOutput struct {
	producer sarama.SyncProducer
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	return err
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}

func createKafkaProducer(brokerList []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return producer, nil
}

func (s *Simulator) determineOutputDestination() OutputDestination {
	if s.Config.KafkaEnabled {
		brokerList := strings.Split(s.Config.KafkaBrokerList, ",")
		producer, err := createKafkaProducer(brokerList)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %s", err)
		}
		return &KafkaOutput{producer: producer}
	}

	switch s.Config.OutputFormat {
	case "json":
		return NewJSONOutput(s.Config.OutputPath, s.Config.OutputFolder)
	case "csv":
		return NewCSVOutput(s.Config.OutputPath, s.Config.OutputFolder)
	case "parquet":
		dest, err := NewParquetOutput(s.Config)
		if err != nil {
			log.Fatalf("Failed to create Parquet output: %s", err)
		}
		return dest
	case "postgres":
		dest, err := output.NewPostgresOutput(&s.Config.Database)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %s", err)
		}
		return dest
	}
	return &ConsoleOutput{}
}

// partitionPath derives a hive-style date partition from the event's
// timestamp field.
func partitionPath(basePath, folder, topic string, msg []byte) (string, error) {
	var event struct {
		Timestamp int64 `json:"timestamp"`
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		return "", err
	}
	if event.Timestamp == 0 {
		return "", fmt.Errorf("invalid timestamp in %s event", topic)
	}

	eventTime := time.Unix(event.Timestamp, 0)
	year, month, day := eventTime.Date()
	partition := fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day)
	return filepath.Join(basePath, folder, topic, partition), nil
}

func sortedKeys(event map[string]interface{}) []string {
	keys := make([]string, 0, len(event))
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
