package simulator

import (
	"encoding/json"
	"time"

	"github.com/jwkuo/bobasim/internal/models"
)

// Event types emitted to output destinations.
const (
	EventTurnCompleted = "TurnCompleted"
	EventDrinkSold     = "DrinkSold"
	EventDaySettled    = "DaySettled"
)

// Output topics.
const (
	TopicTurnEvents = "turn_events"
	TopicSaleEvents = "sale_events"
	TopicDaySummary = "day_summary_events"
)

type turnEvent struct {
	Timestamp    int64   `json:"timestamp"`
	EventType    string  `json:"eventType"`
	Day          int     `json:"day"`
	Turn         int     `json:"turn"`
	Clock        string  `json:"clock"`
	Served       int     `json:"served"`
	LostQueue    int     `json:"lost_queue"`
	LostStock    int     `json:"lost_stock"`
	LostPatience int     `json:"lost_patience"`
	QueueLength  int     `json:"queue_length"`
	Cash         float64 `json:"cash"`
}

type saleEvent struct {
	Timestamp int64   `json:"timestamp"`
	EventType string  `json:"eventType"`
	Day       int     `json:"day"`
	Turn      int     `json:"turn"`
	Clock     string  `json:"clock"`
	Drink     string  `json:"drink"`
	Price     float64 `json:"price"`
}

type daySummaryEvent struct {
	Timestamp      int64   `json:"timestamp"`
	EventType      string  `json:"eventType"`
	Day            int     `json:"day"`
	Served         int     `json:"served"`
	LostQueue      int     `json:"lost_queue"`
	LostStock      int     `json:"lost_stock"`
	LostPatience   int     `json:"lost_patience"`
	Revenue        float64 `json:"revenue"`
	Wages          float64 `json:"wages"`
	Rent           float64 `json:"rent"`
	IngredientCost float64 `json:"ingredient_cost"`
	AdSpend        float64 `json:"ad_spend"`
	LoanPayments   float64 `json:"loan_payments"`
	Profit         float64 `json:"profit"`
	CashEnd        float64 `json:"cash_end"`
	Bankrupt       bool    `json:"bankrupt"`
}

func (s *Simulator) serializeTurnEvent(result models.TurnResult, turnIdx int, at time.Time) (models.EventMessage, error) {
	data, err := json.Marshal(turnEvent{
		Timestamp:    at.Unix(),
		EventType:    EventTurnCompleted,
		Day:          s.Day,
		Turn:         turnIdx,
		Clock:        result.Clock,
		Served:       result.Served,
		LostQueue:    result.LostQueue,
		LostStock:    result.LostStock,
		LostPatience: result.LostPatience,
		QueueLength:  result.QueueLength,
		Cash:         s.Cash,
	})
	if err != nil {
		return models.EventMessage{}, err
	}
	return models.EventMessage{Topic: TopicTurnEvents, Message: data}, nil
}

func (s *Simulator) serializeSaleEvents(result models.TurnResult, turnIdx int, at time.Time) ([]models.EventMessage, error) {
	msgs := make([]models.EventMessage, 0, len(result.DrinksSold))
	for _, name := range result.DrinksSold {
		price := 0.0
		if drink := s.DrinkByName(name); drink != nil {
			price = drink.BasePrice
		}
		data, err := json.Marshal(saleEvent{
			Timestamp: at.Unix(),
			EventType: EventDrinkSold,
			Day:       s.Day,
			Turn:      turnIdx,
			Clock:     result.Clock,
			Drink:     name,
			Price:     price,
		})
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, models.EventMessage{Topic: TopicSaleEvents, Message: data})
	}
	return msgs, nil
}

func (s *Simulator) serializeDaySummary(summary models.DaySummary, at time.Time) (models.EventMessage, error) {
	data, err := json.Marshal(daySummaryEvent{
		Timestamp:      at.Unix(),
		EventType:      EventDaySettled,
		Day:            summary.Day,
		Served:         summary.Served,
		LostQueue:      summary.LostQueue,
		LostStock:      summary.LostStock,
		LostPatience:   summary.LostPatience,
		Revenue:        summary.Revenue,
		Wages:          summary.Wages,
		Rent:           summary.Rent,
		IngredientCost: summary.IngredientCost,
		AdSpend:        summary.AdSpend,
		LoanPayments:   summary.LoanPayments,
		Profit:         summary.Profit,
		CashEnd:        summary.CashEnd,
		Bankrupt:       summary.Bankrupt,
	})
	if err != nil {
		return models.EventMessage{}, err
	}
	return models.EventMessage{Topic: TopicDaySummary, Message: data}, nil
}
