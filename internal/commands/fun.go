package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kisueer/kisueeros/internal/shell"
)

var fortunes = []string{
	"You will have a great day!",
	"Good things come to those who code.",
	"The bugs in your code will soon disappear.",
	"Your next commit will be perfect.",
	"A programmer who breaks something is better than one who never builds.",
	"Today is a good day to learn something new.",
	"Happiness is a bug-free code.",
	"Don't worry about the bugs, they're just features in disguise.",
	"Your code will change the world someday.",
	"The best code is the one that works.",
}

var banners = []string{
	`
          /| ________________
O|===|* >____________________>     KisueerOS
          \|
`,
	`
    ||====================================================||
    ||                                                    ||
    ||   K I S U E E R O S   -   THE EDGE OF PERFORMANCE  ||
    ||____________________________________________________||
    ||====================================================||
`,
	`
     _  ___                           ___  ____
    | |/ (_)___ _   _  ___  ___ _ __ / _ \/ ___|
    | ' /| / __| | | |/ _ \/ _ \ '__| | | \___ \
    | . \| \__ \ |_| |  __/  __/ |  | |_| |___) |
    |_|\_\_|___/\__,_|\___|\___|_|   \___/|____/
`,
}

var weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Snowy", "Windy", "Stormy", "Foggy", "Clear"}

// devices is the fixed scan result shown by the device command
var devices = []string{
	"Android Phone (DB)",
	"iPhone (DB)",
	"Android Phone (DB)",
	"Android Phone (DB)",
	"iPhone (DB)",
	"Android Phone (DB)",
	"Android Phone (DB)",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown Android Phone",
	"Unknown iPhone",
	"Unknown iPhone",
	"Unknown iPhone",
	"Unknown iPhone",
	"Asus Router (Router DB)",
	"HP Built-In PC",
	"Unknown Projector",
}

type deviceMenu struct {
	title   string
	options []string
}

var (
	phoneMenu     = deviceMenu{"Options for Android", []string{"Run Android Crash Exploit", "Run Android Stress Exploit", "Bruteforce pw", "BLE Spam"}}
	routerMenu    = deviceMenu{"Options for Routers", []string{"Bruteforce pw", "Asus Stress Exploit", "Launch DDOS Attack (183 bots)", "Get IP Connection"}}
	pcMenu        = deviceMenu{"Options for PC", []string{"Launch DDOS Attack (183 bots)", "Bruteforce pw", "BLE Spam"}}
	projectorMenu = deviceMenu{"Options for Projector", []string{"IR Remote"}}
)

func registerFunCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "fortune", Usage: "fortune", Description: "Get a random fortune", Handler: shell.HandlerFunc(d.fortune)},
		{Name: "flip", Usage: "flip", Description: "Flip a coin", Handler: shell.HandlerFunc(d.flip)},
		{Name: "dice", Usage: "dice [sides]", Description: "Roll a dice", Handler: shell.HandlerFunc(d.dice)},
		{Name: "banner", Usage: "banner", Description: "Show a random KisueerOS banner", Handler: shell.HandlerFunc(d.banner)},
		{Name: "ddos", Usage: "ddos", Description: "Show the botnet console (simulation)", Handler: shell.HandlerFunc(d.ddos)},
		{Name: "device", Usage: "device", Description: "Scan for devices nearby (simulation)", Handler: shell.HandlerFunc(cmdDevice)},
		{Name: "weather", Usage: "weather", Description: "Display simulated weather", Handler: shell.HandlerFunc(d.weather)},
	})
}

func (d *deps) fortune(_ context.Context, s *shell.Session, _ []string) error {
	s.Println(fortunes[d.rand.IntN(len(fortunes))])
	return nil
}

func (d *deps) flip(_ context.Context, s *shell.Session, _ []string) error {
	result := "Heads"
	if d.rand.IntN(2) == 1 {
		result = "Tails"
	}
	s.Printf("Coin flip: %s\n", result)
	return nil
}

func (d *deps) dice(_ context.Context, s *shell.Session, args []string) error {
	sides := 6
	if len(args) > 0 && isDigits(args[0]) {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			sides = n
		}
	}
	s.Printf("Dice roll (d%d): %d\n", sides, d.rand.IntN(sides)+1)
	return nil
}

func (d *deps) banner(_ context.Context, s *shell.Session, _ []string) error {
	s.Println(themeOf(s).Title.Render(banners[d.rand.IntN(len(banners))]))
	return nil
}

func (d *deps) ddos(_ context.Context, s *shell.Session, _ []string) error {
	theme := themeOf(s)
	bots := 120 + d.rand.IntN(121)

	body := strings.Join([]string{
		theme.Alert.Render("WRAITH DDOS ATTACK v2.1.7"),
		"",
		theme.Executable.Render(fmt.Sprintf("BOTNET ONLINE: %d BOTS", bots)),
		theme.Title.Render("COMMAND AND CONTROL: ACTIVE"),
		theme.Alert.Render("C2 SERVER: 102.1*.***.1"),
	}, "\n")

	s.Println(theme.Box.Render(body))
	return nil
}

func (d *deps) weather(_ context.Context, s *shell.Session, _ []string) error {
	condition := weatherConditions[d.rand.IntN(len(weatherConditions))]
	temp := d.rand.IntN(40)
	humidity := 30 + d.rand.IntN(61)

	s.Println(themeOf(s).Heading("Weather Forecast"))
	s.Printf("Condition: %s\n", condition)
	s.Printf("Temperature: %d°C\n", temp)
	s.Printf("Humidity: %d%%\n", humidity)
	return nil
}

func cmdDevice(_ context.Context, s *shell.Session, _ []string) error {
	theme := themeOf(s)

	s.Println("Scanning for devices around")
	s.Printf("Received connection from %d devices\n\n", len(devices))
	for i, name := range devices {
		s.Printf("%d. %s\n", i+1, name)
	}
	s.Println()

	choice, err := s.Ask(theme.User.Render(fmt.Sprintf("Select a device (1-%d):", len(devices))) + " ")
	if err != nil {
		return deviceAborted(err)
	}

	menu := menuFor(strings.TrimSpace(choice))
	s.Println()
	s.Println(theme.Title.Render(menu.title))
	s.Println()
	for i, opt := range menu.options {
		s.Printf("%d. %s\n", i+1, opt)
	}
	s.Println()

	if _, err := s.Ask(theme.User.Render("Choice:") + " "); err != nil {
		return deviceAborted(err)
	}
	s.Println(theme.Muted.Render("Simulation only: no action taken."))
	return nil
}

func menuFor(choice string) deviceMenu {
	switch choice {
	case "25":
		return routerMenu
	case "26":
		return pcMenu
	case "27":
		return projectorMenu
	default:
		return phoneMenu
	}
}

// deviceAborted turns a failed follow-up read into a quiet cancellation
func deviceAborted(err error) error {
	if errors.Is(err, shell.ErrInterrupt) {
		return &shell.Error{Kind: shell.KindInterrupt, Op: "device", Msg: "Device scan cancelled."}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
