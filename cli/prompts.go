package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}

func ParseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func (c *CLI) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// promptDate re-prompts until a well-formed date is entered.
func (c *CLI) promptDate(prompt string) time.Time {
	for !c.eof {
		d, err := ParseDate(c.readLine(prompt))
		if err == nil {
			return d
		}
		fmt.Fprintln(c.out, "Invalid date. Please use the YYYY-MM-DD format.")
	}
	return time.Time{}
}

// promptStayDuration collects check-in and check-out dates, insisting the
// check-out is not before the check-in.
func (c *CLI) promptStayDuration() (checkIn, checkOut time.Time) {
	checkIn = c.promptDate("Enter check-in date (YYYY-MM-DD): ")
	for !c.eof {
		checkOut = c.promptDate("Enter valid check-out date (YYYY-MM-DD): ")
		if !checkOut.Before(checkIn) {
			return checkIn, checkOut
		}
		fmt.Fprintln(c.out, "Check-out date must be later than the check-in date. Please try again.")
	}
	return checkIn, checkIn
}

// promptRoomID loops until the entered id resolves to an existing, available
// room, reporting the reason for each rejection.
func (c *CLI) promptRoomID() uint {
	for !c.eof {
		id, err := ParseID(c.readLine("Enter room ID to book: "))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input! Please enter a numeric room ID.")
			continue
		}

		avail, err := c.rooms.CheckAvailability(id)
		switch {
		case err != nil:
			fmt.Fprintf(c.out, "Room ID %d does not exist. Please enter a valid room ID.\n", id)
		case !avail.Available:
			fmt.Fprintf(c.out, "Room ID %d is not available. Please choose another room.\n", id)
		default:
			return id
		}
	}
	return 0
}
