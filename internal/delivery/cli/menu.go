package cli

import "context"

// Menu wires the handlers into the terminal menu tree, the CLI
// counterpart of an HTTP router.
type Menu struct {
	patientHandler  *PatientHandler
	bookingHandler  *BookingHandler
	scheduleHandler *ScheduleHandler
	faqHandler      *FAQHandler
	prompter        *Prompter
	appName         string
}

func NewMenu(
	patientHandler *PatientHandler,
	bookingHandler *BookingHandler,
	scheduleHandler *ScheduleHandler,
	faqHandler *FAQHandler,
	prompter *Prompter,
	appName string,
) *Menu {
	return &Menu{
		patientHandler:  patientHandler,
		bookingHandler:  bookingHandler,
		scheduleHandler: scheduleHandler,
		faqHandler:      faqHandler,
		prompter:        prompter,
		appName:         appName,
	}
}

// Run drives the main menu until the operator exits.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.prompter.ClearScreen()
		m.prompter.Printf("=== %s ===\n", m.appName)
		m.prompter.Println("1. Patient menu")
		m.prompter.Println("2. Administrator menu")
		m.prompter.Println("0. Exit")

		switch m.prompter.Choice("Choose: ", []string{"0", "1", "2"}) {
		case "0":
			m.prompter.ClearScreen()
			m.prompter.Println("Goodbye!")
			return
		case "1":
			m.patientMenu(ctx)
		case "2":
			m.adminMenu(ctx)
		}
	}
}

func (m *Menu) patientMenu(ctx context.Context) {
	for {
		m.prompter.ClearScreen()
		m.prompter.Println("=== Patient Menu ===")
		m.prompter.Println("1. Register patient")
		m.prompter.Println("2. Book appointment")
		m.prompter.Println("3. View appointments")
		m.prompter.Println("4. Reminders / confirm or cancel appointments")
		m.prompter.Println("5. FAQ - frequently asked questions")
		m.prompter.Println("0. Back to main menu")

		switch m.prompter.Choice("Choose: ", []string{"0", "1", "2", "3", "4", "5"}) {
		case "0":
			m.prompter.ClearScreen()
			return
		case "1":
			m.prompter.ClearScreen()
			m.patientHandler.Register(ctx)
			m.prompter.Pause()
		case "2":
			m.prompter.ClearScreen()
			m.bookingHandler.Book(ctx)
			m.prompter.Pause()
		case "3":
			m.prompter.ClearScreen()
			m.bookingHandler.ViewAppointments(ctx)
			m.prompter.Pause()
		case "4":
			m.prompter.ClearScreen()
			m.bookingHandler.Reminders(ctx)
			m.prompter.Pause()
		case "5":
			m.prompter.ClearScreen()
			m.faqHandler.Browse(ctx)
			m.prompter.Pause()
		}
	}
}

func (m *Menu) adminMenu(ctx context.Context) {
	for {
		m.prompter.ClearScreen()
		m.prompter.Println("=== Administrator Menu ===")
		m.prompter.Println("1. Manage slots")
		m.prompter.Println("2. Manage FAQ")
		m.prompter.Println("3. List registered patients")
		m.prompter.Println("0. Back to main menu")

		switch m.prompter.Choice("Choose: ", []string{"0", "1", "2", "3"}) {
		case "0":
			m.prompter.ClearScreen()
			return
		case "1":
			m.prompter.ClearScreen()
			m.scheduleHandler.Manage(ctx)
			m.prompter.Pause()
		case "2":
			m.prompter.ClearScreen()
			m.faqHandler.Manage(ctx)
			m.prompter.Pause()
		case "3":
			m.prompter.ClearScreen()
			m.patientHandler.ListAll(ctx)
			m.prompter.Pause()
		}
	}
}
