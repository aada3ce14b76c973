package simulator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jwkuo/bobasim/internal/models"
)

func TestSerializeTurnEvent(t *testing.T) {
	sim := newTestSimulator(t)
	result := models.TurnResult{
		Served:      2,
		LostQueue:   1,
		QueueLength: 3,
		Clock:       "08:15",
	}
	at := time.Date(2025, 6, 1, 8, 15, 0, 0, time.UTC)

	msg, err := sim.serializeTurnEvent(result, 1, at)
	if err != nil {
		t.Fatalf("serializeTurnEvent: %v", err)
	}
	if msg.Topic != TopicTurnEvents {
		t.Errorf("topic = %q, want %q", msg.Topic, TopicTurnEvents)
	}

	var event map[string]interface{}
	if err := json.Unmarshal(msg.Message, &event); err != nil {
		t.Fatalf("event is not valid JSON: %v", err)
	}
	if event["eventType"] != EventTurnCompleted {
		t.Errorf("eventType = %v, want %q", event["eventType"], EventTurnCompleted)
	}
	if event["clock"] != "08:15" {
		t.Errorf("clock = %v, want 08:15", event["clock"])
	}
	if int(event["served"].(float64)) != 2 {
		t.Errorf("served = %v, want 2", event["served"])
	}
	if int64(event["timestamp"].(float64)) != at.Unix() {
		t.Errorf("timestamp = %v, want %d", event["timestamp"], at.Unix())
	}
}

func TestSerializeSaleEventsCarriesPrices(t *testing.T) {
	sim := newTestSimulator(t)
	result := models.TurnResult{
		Served:     2,
		DrinksSold: []string{"Classic Milk Tea", "Classic Milk Tea"},
		Clock:      "09:00",
	}

	msgs, err := sim.serializeSaleEvents(result, 4, time.Now())
	if err != nil {
		t.Fatalf("serializeSaleEvents: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	for _, msg := range msgs {
		var event saleEvent
		if err := json.Unmarshal(msg.Message, &event); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if event.Drink != "Classic Milk Tea" || event.Price != 4.50 {
			t.Errorf("sale = %q at %.2f, want Classic Milk Tea at 4.50", event.Drink, event.Price)
		}
	}
}

func TestJSONOutputPartitionsByDate(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "session")
	defer out.Close()

	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	msg := []byte(`{"timestamp":` + strconv.FormatInt(at.Unix(), 10) + `,"served":1}`)
	if err := out.WriteMessage(TopicTurnEvents, msg); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	// Partition folders come from the event's own date, so compute them
	// in local time the way the writer does.
	year, month, day := time.Unix(at.Unix(), 0).Date()
	partition := filepath.Join(dir, "session", TopicTurnEvents,
		fmt.Sprintf("year=%d", year),
		fmt.Sprintf("month=%02d", month),
		fmt.Sprintf("day=%02d", day),
		"data.json")
	data, err := os.ReadFile(partition)
	if err != nil {
		t.Fatalf("partitioned file missing: %v", err)
	}
	if !strings.Contains(string(data), `"served":1`) {
		t.Errorf("file content = %q", data)
	}
}

func TestCSVOutputWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "session")
	defer out.Close()

	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()
	for i := 0; i < 2; i++ {
		msg := []byte(`{"timestamp":` + strconv.FormatInt(at, 10) + `,"served":1,"cash":99.5}`)
		if err := out.WriteMessage(TopicTurnEvents, msg); err != nil {
			t.Fatalf("WriteMessage: %v", err)
		}
	}

	var csvPath string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, "data.csv") {
			csvPath = path
		}
		return nil
	})
	if err != nil || csvPath == "" {
		t.Fatalf("no csv written under %s", dir)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header plus 2 rows", len(lines))
	}
	if lines[0] != "cash,served,timestamp" {
		t.Errorf("header = %q, want sorted keys", lines[0])
	}
}

func TestPartitionPathRejectsMissingTimestamp(t *testing.T) {
	if _, err := partitionPath("/tmp", "x", TopicTurnEvents, []byte(`{"served":1}`)); err == nil {
		t.Error("zero timestamp accepted")
	}
	if _, err := partitionPath("/tmp", "x", TopicTurnEvents, []byte(`not json`)); err == nil {
		t.Error("malformed event accepted")
	}
}
