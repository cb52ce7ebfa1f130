// Package reminder selects and schedules periodic hydration reminders.
package reminder

import (
	"fmt"
	"math"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

// Message is a notification payload.
type Message struct {
	Title string
	Body  string
}

// timeBand maps a local-hour range to a fixed time-of-day message.
type timeBand struct {
	from, to int // [from, to) local hours
	msg      Message
}

var timeBands = []timeBand{
	{6, 8, Message{"Good morning!", "Start the day with a glass of warm water."}},
	{8, 11, Message{"Work time!", "Don't forget a glass of water after breakfast."}},
	{11, 13, Message{"Before lunch!", "Water before a meal helps with portion control."}},
	{13, 15, Message{"After the nap!", "A glass of water wakes you up for the afternoon."}},
	{15, 17, Message{"Mid-afternoon!", "Staying hydrated helps you focus."}},
	{17, 19, Message{"After exercise!", "Rehydrate after physical activity."}},
	{19, 21, Message{"Evening!", "Flush out the day with a glass of water."}},
	{21, 23, Message{"Before bed!", "Have a small glass about 30 minutes before sleep."}},
}

const defaultTitle = "Time to drink water!"

// ForTime picks a reminder message. Inside the 06:00-23:00 bands the
// time-of-day message wins regardless of progress; outside them the
// message is chosen by percent-of-goal tiers.
func ForTime(now time.Time, rec model.DailyRecord) Message {
	hour := now.Hour()
	for _, b := range timeBands {
		if hour >= b.from && hour < b.to {
			return b.msg
		}
	}
	return forProgress(rec)
}

func forProgress(rec model.DailyRecord) Message {
	percent := 0.0
	if rec.Goal > 0 {
		percent = math.Min(float64(rec.Amount)/float64(rec.Goal)*100, 100)
	}
	remaining := rec.Remaining()

	switch {
	case percent >= 100:
		return Message{"Great job!", "You reached today's goal! Keep it up."}
	case percent >= 75:
		return Message{defaultTitle,
			fmt.Sprintf("Almost there! Only %dml to go.", remaining)}
	case percent >= 50:
		return Message{defaultTitle,
			fmt.Sprintf("You've had %dml. %dml left to reach your goal.", rec.Amount, remaining)}
	case percent >= 25:
		return Message{defaultTitle,
			fmt.Sprintf("Drink up! You're only at %d%% of your goal.", int(math.Round(percent)))}
	default:
		return Message{defaultTitle,
			fmt.Sprintf("Don't forget to drink water! Today's goal: %dml.", rec.Goal)}
	}
}

// DescribeCadence renders a reminder interval for confirmation messages,
// in minutes below an hour and hours at or above.
func DescribeCadence(d time.Duration) string {
	mins := int(d.Minutes())
	if mins >= 60 {
		if mins%60 == 0 {
			h := mins / 60
			if h == 1 {
				return "every hour"
			}
			return fmt.Sprintf("every %d hours", h)
		}
		return fmt.Sprintf("every %.1f hours", d.Hours())
	}
	return fmt.Sprintf("every %d minutes", mins)
}
