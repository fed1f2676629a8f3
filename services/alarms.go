package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"carrot-server/repositories"
)

// Notifier is the push channel alarms go out on; ws.Manager satisfies it.
type Notifier interface {
	SendToUser(userID uint, payload []byte) error
}

// AlarmScheduler scans incomplete todos once a minute and pushes a
// notification to the owner when a todo's alarm time matches the current
// minute. Fired alarms are remembered for the minute so a todo rings once.
type AlarmScheduler struct {
	todos    repositories.TodoRepository
	notifier Notifier
	interval time.Duration

	mu         sync.Mutex
	fired      map[uint]bool
	lastMinute string
}

func NewAlarmScheduler(todos repositories.TodoRepository, notifier Notifier) *AlarmScheduler {
	return &AlarmScheduler{
		todos:    todos,
		notifier: notifier,
		interval: time.Minute,
		fired:    make(map[uint]bool),
	}
}

func (s *AlarmScheduler) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for range ticker.C {
			s.Tick(time.Now())
		}
	}()
}

type alarmPayload struct {
	Type      string `json:"type"`
	TodoID    uint   `json:"todo_id"`
	Title     string `json:"title"`
	AlarmTime string `json:"alarm_time"`
}

// Tick fires all alarms due at now's minute and returns how many were
// pushed. Delivery failures (owner not connected) still count the alarm as
// fired; it will not re-ring within the minute.
func (s *AlarmScheduler) Tick(now time.Time) int {
	minute := now.Format("15:04")

	s.mu.Lock()
	if minute != s.lastMinute {
		s.fired = make(map[uint]bool)
		s.lastMinute = minute
	}
	s.mu.Unlock()

	todos, err := s.todos.GetDueAlarms(minute)
	if err != nil {
		log.Printf("alarm scan failed: %v", err)
		return 0
	}

	pushed := 0
	for _, todo := range todos {
		s.mu.Lock()
		already := s.fired[todo.ID]
		if !already {
			s.fired[todo.ID] = true
		}
		s.mu.Unlock()
		if already {
			continue
		}

		payload, _ := json.Marshal(alarmPayload{
			Type:      "alarm",
			TodoID:    todo.ID,
			Title:     todo.Title,
			AlarmTime: minute,
		})
		if err := s.notifier.SendToUser(todo.OwnerID, payload); err != nil {
			log.Printf("alarm for todo %d not delivered: %v", todo.ID, err)
			continue
		}
		pushed++
	}
	return pushed
}
