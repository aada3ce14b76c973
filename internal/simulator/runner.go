package simulator

import (
	"errors"
	"log"

	"github.com/jwkuo/bobasim/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Run drives a full multi-day session: for each day a morning phase,
// a fixed number of turns, then settlement. Events stream to the
// configured output destination. A bankruptcy stops the session
// immediately.
func (s *Simulator) Run() {
	output := s.determineOutputDestination()
	defer func() {
		if err := output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	days := s.Config.Days
	turns := s.Config.TurnsPerDay

	log.Printf("Simulation starts: %d days x %d turns at %s", days, turns, s.Venue.Name)

	bar := progressbar.Default(int64(days*turns), "simulating")

	for day := 0; day < days; day++ {
		if err := s.StartDay(); err != nil {
			log.Printf("Cannot start day %d: %v", s.Day, err)
			return
		}

		if s.Config.AdBudget > 0 {
			if err := s.SetAdBudget(s.Config.AdBudget); err != nil {
				log.Printf("Skipping advertising: %v", err)
			}
		}

		s.warnOnThinPackaging()

		for turn := 0; turn < turns; turn++ {
			result, err := s.AdvanceTurn()
			if err != nil {
				log.Printf("Turn aborted: %v", err)
				return
			}
			_ = bar.Add(1)

			at := s.eventTime(turn)
			if msg, err := s.serializeTurnEvent(result, turn, at); err == nil {
				s.writeMessage(output, msg)
			} else {
				log.Printf("Error serializing turn event: %v", err)
			}
			if msgs, err := s.serializeSaleEvents(result, turn, at); err == nil {
				for _, msg := range msgs {
					s.writeMessage(output, msg)
				}
			} else {
				log.Printf("Error serializing sale events: %v", err)
			}
		}

		summary, err := s.SettleDay()
		if msg, serr := s.serializeDaySummary(summary, s.eventTime(turns)); serr == nil {
			s.writeMessage(output, msg)
		} else {
			log.Printf("Error serializing day summary: %v", serr)
		}

		s.logDaySummary(summary)

		if errors.Is(err, ErrBankrupt) {
			log.Printf("Bankrupt on day %d with $%.2f. Game over.", summary.Day, summary.CashEnd)
			return
		}
		if err != nil {
			log.Printf("Settlement failed: %v", err)
			return
		}
	}

	log.Printf("Simulation completed after %d days. Closing cash: $%.2f", days, s.Cash)
}

func (s *Simulator) writeMessage(output OutputDestination, msg models.EventMessage) {
	if err := output.WriteMessage(msg.Topic, msg.Message); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

// warnOnThinPackaging compares cup stock against the expected customer
// count for the day.
func (s *Simulator) warnOnThinPackaging() {
	expected := s.ExpectedCustomers()
	totalCups := s.Stock[models.CupRegular] + s.Stock[models.CupTall]
	if totalCups < expected {
		log.Printf("Warning: %d cups in stock but ~%d customers expected today", totalCups, expected)
	}
}

func (s *Simulator) logDaySummary(summary models.DaySummary) {
	log.Printf("Day %d: revenue $%.2f, profit $%.2f, served %d, lost %d/%d/%d (queue/stock/patience), cash $%.2f",
		summary.Day, summary.Revenue, summary.Profit, summary.Served,
		summary.LostQueue, summary.LostStock, summary.LostPatience, summary.CashEnd)
}
