package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/shafiuddin/tajhotel/booking"
	"github.com/shafiuddin/tajhotel/customer"
	"github.com/shafiuddin/tajhotel/history"
	"github.com/shafiuddin/tajhotel/payment"
	"github.com/shafiuddin/tajhotel/room"
)

// CLI drives the interactive session: registration/login followed by the
// booking menu. It only collects input and reports outcomes; all rules live
// in the domain services.
type CLI struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool

	rooms    *room.Directory
	engine   *booking.Engine
	ledger   *payment.Ledger
	accounts *customer.Accounts
	history  *history.Reporter
}

func New(in io.Reader, out io.Writer, rooms *room.Directory, engine *booking.Engine, ledger *payment.Ledger, accounts *customer.Accounts, reporter *history.Reporter) *CLI {
	return &CLI{
		in:       bufio.NewScanner(in),
		out:      out,
		rooms:    rooms,
		engine:   engine,
		ledger:   ledger,
		accounts: accounts,
		history:  reporter,
	}
}

func (c *CLI) Run() error {
	log.Println("starting the hotel booking system")

	user := c.authenticate()
	if user == nil {
		return nil
	}

	for !c.eof {
		c.printMenu()
		switch c.readLine("Select an option: ") {
		case "1":
			c.viewRooms()
		case "2":
			c.bookRoom(user.ID)
		case "3":
			c.cancelBooking()
		case "4":
			c.viewHistory(user.ID)
		case "5":
			c.exportHistory(user.ID)
		case "7":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			if c.eof {
				return nil
			}
			fmt.Fprintln(c.out, "Invalid choice. Please select a valid option.")
		}
	}
	return nil
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "\n1. View Available Rooms")
	fmt.Fprintln(c.out, "2. Book a Room")
	fmt.Fprintln(c.out, "3. Cancel Booking And Refund")
	fmt.Fprintln(c.out, "4. View Booking / Cancellation History")
	fmt.Fprintln(c.out, "5. Export History To Excel")
	fmt.Fprintln(c.out, "7. Exit")
}

// authenticate loops between registration and login until a customer is
// logged in. Returns nil when input runs out.
func (c *CLI) authenticate() *customer.Customer {
	for !c.eof {
		switch c.readLine("\n 1. registration   2. login \n") {
		case "1":
			c.register()
		case "2":
			if user := c.login(); user != nil {
				return user
			}
		default:
			if c.eof {
				return nil
			}
			fmt.Fprintln(c.out, "Please choose 1 or 2.")
		}
	}
	return nil
}

// promptValid re-prompts until the validator accepts the entered value.
func (c *CLI) promptValid(prompt string, valid func(string) bool, errMsg string) string {
	for !c.eof {
		v := c.readLine(prompt)
		if valid(v) {
			return v
		}
		fmt.Fprintln(c.out, errMsg)
	}
	return ""
}

func (c *CLI) register() {
	input := customer.RegistrationInput{
		FirstName: c.promptValid("First Name (2-52 characters, only alphabets): ", customer.ValidName,
			"Invalid first name. It should contain only alphabets, be 2-52 characters long, and may include spaces."),
		LastName: c.promptValid("Last Name (2-52 characters, only alphabets): ", customer.ValidName,
			"Invalid last name. It should contain only alphabets, be 2-52 characters long, and may include spaces."),
		Email: c.promptValid("Email: ", customer.ValidEmail,
			"Invalid email format. Please try again."),
		Password: c.promptValid("Password (at least 8 characters, 1 uppercase, 1 lowercase, 1 digit, 1 special character, no spaces): ", customer.ValidPassword,
			"Invalid password. It must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, one special character, and no spaces."),
		PhoneNumber: c.promptValid("Phone Number (must contain 10 digits, can include spaces, dashes, parentheses, and a country code): ", customer.ValidPhone,
			"Invalid phone number format. It should contain 10 digits and may include spaces, dashes, parentheses, and a country code."),
	}

	if c.eof {
		return
	}

	cust, err := c.accounts.Register(input)
	if err != nil {
		if errors.Is(err, customer.ErrEmailTaken) {
			fmt.Fprintln(c.out, "Email is already registered. Please try logging in.")
			return
		}
		log.Printf("registration failed: %v", err)
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "\nCustomer %s %s registered successfully.\n", cust.FirstName, cust.LastName)
}

func (c *CLI) login() *customer.Customer {
	email := c.readLine("Enter your email: ")
	password := c.readLine("Enter your password: ")

	cust, err := c.accounts.Login(email, password)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCredentials) {
			fmt.Fprintln(c.out, "\nInvalid credentials or user not found. Please enter valid email and password.")
		} else {
			log.Printf("login failed: %v", err)
			fmt.Fprintf(c.out, "An error occurred during login: %v\n", err)
		}
		return nil
	}

	return cust
}

func (c *CLI) viewRooms() {
	rooms, err := c.rooms.ListAvailable()
	if err != nil {
		log.Printf("fetching rooms: %v", err)
		fmt.Fprintf(c.out, "An error occurred while fetching rooms: %v\n", err)
		return
	}

	fmt.Fprintln(c.out, "\nroom_id roomType price Availability")
	for _, r := range rooms {
		fmt.Fprintf(c.out, "%d  %s  $%.2f  available\n", r.ID, r.RoomType, r.Price)
	}
}

func (c *CLI) bookRoom(customerID uint) {
	roomID := c.promptRoomID()
	checkIn, checkOut := c.promptStayDuration()
	if c.eof {
		return
	}
	nights := booking.Nights(checkIn, checkOut)

	p := c.promptPayment(roomID, nights)
	if p == nil {
		return
	}

	b, err := c.engine.Create(p.ID, roomID, customerID, checkIn, checkOut)
	if err != nil {
		log.Printf("creating booking: %v", err)
		fmt.Fprintf(c.out, "An error occurred while creating the booking: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "\n\nBooking created successfully for Customer ID %d with total amount $%.2f.\n", customerID, b.TotalAmount)
	fmt.Fprintf(c.out, "Receipt number: %s\n", p.ReceiptNumber)
}

// promptPayment quotes the stay and re-prompts until the entered amount
// covers it. There is no upper bound on the paid amount.
func (c *CLI) promptPayment(roomID uint, nights int) *payment.Payment {
	total, err := c.ledger.Quote(roomID, nights)
	if err != nil {
		log.Printf("quoting stay: %v", err)
		fmt.Fprintf(c.out, "An error occurred: %v\n", err)
		return nil
	}

	fmt.Fprintf(c.out, "\n\nThe total amount for your stay is $%.2f.\n", total)

	for !c.eof {
		amount, err := ParseAmount(c.readLine(fmt.Sprintf("Enter payment amount (at least $%.2f): ", total)))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input! Please enter a valid amount.")
			continue
		}

		p, err := c.ledger.Charge(roomID, nights, amount)
		if err != nil {
			if errors.Is(err, payment.ErrInsufficientPayment) {
				fmt.Fprintf(c.out, "Insufficient payment! You still need to pay at least $%.2f.\n", total)
				continue
			}
			log.Printf("processing payment: %v", err)
			fmt.Fprintf(c.out, "An error occurred while processing payment: %v\n", err)
			return nil
		}

		fmt.Fprintf(c.out, "\n\nProcessing payment of $%.2f...\n", amount)
		fmt.Fprintln(c.out, "Payment successful! Thank you.")
		return p
	}
	return nil
}

func (c *CLI) cancelBooking() {
	bookingID, err := ParseID(c.readLine("Enter your Booking ID for Cancellation: "))
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input! Please enter a numeric booking ID.")
		return
	}

	var result *booking.CancellationResult
	switch c.readLine("\n\n1. Full Cancellation OR 2. Partial Cancellation: ") {
	case "1":
		result, err = c.engine.CancelFull(bookingID)
	case "2":
		newCheckOut := c.promptDate("\nEnter new check-out date (YYYY-MM-DD): ")
		result, err = c.engine.CancelPartial(bookingID, newCheckOut)
	default:
		fmt.Fprintln(c.out, "Invalid choice. Please select 1 or 2.")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			fmt.Fprintln(c.out, "No booking found with the provided ID.")
		case errors.Is(err, booking.ErrAlreadyCancelled):
			fmt.Fprintln(c.out, "Booking cannot be cancelled as it is already cancelled or does not exist.")
		case errors.Is(err, booking.ErrInvalidCancellation):
			fmt.Fprintf(c.out, "Invalid cancellation: %v\n", err)
		default:
			log.Printf("cancelling booking %d: %v", bookingID, err)
			fmt.Fprintf(c.out, "An error occurred while cancelling Booking ID %d: %v\n", bookingID, err)
		}
		return
	}

	b := result.Booking
	if b.CancellationStatus == booking.CancellationPartial {
		fmt.Fprintf(c.out, "Partial cancellation processed. New total amount: $%.2f. Refund $%.2f to customer ID %d.\n", b.TotalAmount, result.RefundAmount, b.CustomerID)
	} else {
		fmt.Fprintf(c.out, "Half of the total amount will be refunded to customer ID %d. Refund: $%.2f.\n", b.CustomerID, result.RefundAmount)
	}
}

func (c *CLI) viewHistory(customerID uint) {
	records, err := c.history.View(customerID)
	if err != nil {
		log.Printf("fetching history: %v", err)
		fmt.Fprintf(c.out, "An error occurred while fetching booking history: %v\n", err)
		return
	}

	if len(records) == 0 {
		fmt.Fprintf(c.out, "No bookings found for Customer ID %d.\n", customerID)
		return
	}

	fmt.Fprintf(c.out, "\nBooking history for Customer ID %d:\n\n", customerID)
	for _, r := range records {
		fmt.Fprintf(c.out, "Booking %d | Room %d | %d night(s) | %s -> %s | %s | booked %s | $%.2f | %s | cancelled: %s\n",
			r.BookingID, r.RoomID, r.Nights, r.CheckIn, r.CheckOut,
			r.Status, r.BookingTime, r.TotalAmount, r.CancellationStatus, r.CancellationTimestamp)
	}
}

func (c *CLI) exportHistory(customerID uint) {
	path := fmt.Sprintf("history_%d.xlsx", customerID)
	if err := c.history.Export(customerID, path); err != nil {
		log.Printf("exporting history: %v", err)
		fmt.Fprintf(c.out, "An error occurred while exporting history: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Booking history exported to %s.\n", path)
}
