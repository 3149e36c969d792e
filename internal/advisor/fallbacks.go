package advisor

import "fmt"

// Built-in responses used whenever no model is configured or a call
// fails. The app keeps working offline; advice just stops being bespoke.

var compassionQuotes = []string{
	"I am doing my best with what I have today. That is enough.",
	"Action creates motivation. Every XP point earned is progress.",
	"I'm in survival mode. My only job right now is to survive.",
	"Hand on heart. 'I earned XP. I'm moving forward.'",
	"Success = 60%, not perfection.",
	"It is okay to rest. Rest is productive.",
	"All parts are welcome here.",
	"How do I feel toward this part?",
}

var fallbackMicroTasks = []string{
	"Drink a glass of water",
	"Stretch for 1 minute",
	"Look out a window",
}

func fallbackHabitStack(cue string) string {
	return fmt.Sprintf("After I %s, I will take one deep breath.", cue)
}
