// Package notify delivers user notifications through the platform's
// notification facility, falling back to console output.
package notify

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// Notifier shows a user-facing notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop shells out to the platform notifier. Delivery is best-effort:
// when the command is unavailable or fails, the message is logged instead
// and no error reaches the caller.
type Desktop struct{}

// Notify shows a desktop notification, or logs when unsupported.
func (Desktop) Notify(title, body string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		cmd = exec.Command("notify-send", title, body)
	case "windows":
		script := fmt.Sprintf(
			"New-BurntToastNotification -Text %q, %q", title, body)
		cmd = exec.Command("powershell", "-NoProfile", "-Command", script)
	default:
		Console{}.log(title, body)
		return nil
	}

	if err := cmd.Run(); err != nil {
		Console{}.log(title, body)
	}
	return nil
}

// Console logs notifications to standard error. Used when desktop
// notifications are unsupported or as an explicit fallback.
type Console struct{}

// Notify logs the message.
func (c Console) Notify(title, body string) error {
	c.log(title, body)
	return nil
}

func (Console) log(title, body string) {
	log.Printf("%s: %s", title, body)
}
