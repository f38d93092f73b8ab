package repository

import (
	"net/url"
	"testing"

	"github.com/filterable-dev/filterable/api/server/types"
	"github.com/filterable-dev/filterable/internal/models"
	"github.com/filterable-dev/filterable/internal/utils"
)

func seedTickets(tester *tester, t *testing.T) {
	t.Helper()

	seed := []struct {
		title    string
		status   types.TicketStatus
		priority types.TicketPriority
		assignee string
		project  string
	}{
		{"login page crashes on submit", types.TicketStatusOpen, types.TicketPriorityHigh, "dana", "web"},
		{"update onboarding copy", types.TicketStatusOpen, types.TicketPriorityLow, "sam", "web"},
		{"worker deadlocks under load", types.TicketStatusAcknowledged, types.TicketPriorityHigh, "dana", "backend"},
		{"bump postgres driver", types.TicketStatusResolved, types.TicketPriorityMedium, "sam", "backend"},
		{"flaky export test", types.TicketStatusOpen, types.TicketPriorityMedium, "ravi", "backend"},
	}

	for _, s := range seed {
		ticket := models.NewTicket()

		ticket.Title = s.title
		ticket.Status = s.status
		ticket.Priority = s.priority
		ticket.Assignee = s.assignee
		ticket.Project = s.project

		if _, err := tester.repo.Ticket.CreateTicket(ticket); err != nil {
			t.Fatalf("Expected no error after creating ticket, got %v", err)
		}
	}
}

func TestReadTicket(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_read_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	ticket := models.NewTicket()
	ticket.Title = "login page crashes on submit"

	ticket, err := tester.repo.Ticket.CreateTicket(ticket)

	if err != nil {
		t.Fatalf("Expected no error after creating ticket, got %v", err)
	}

	ticket, err = tester.repo.Ticket.ReadTicket(ticket.UniqueID)

	if err != nil {
		t.Fatalf("Expected no error after reading ticket, got %v", err)
	}

	if ticket.Title != "login page crashes on submit" {
		t.Errorf("Expected ticket title to survive the round trip, got %q", ticket.Title)
	}
}

func TestListTicketsWithoutParams(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_list_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	tickets, paginatedResult, err := tester.repo.Ticket.ListTickets(url.Values{})

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 5 {
		t.Errorf("Expected 5 tickets, got %d", len(tickets))
	}

	if paginatedResult.NumPages != 1 {
		t.Errorf("Expected 1 page, got %d", paginatedResult.NumPages)
	}
}

func TestListTicketsFiltersByStatusAndAssignee(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_filter_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	values := url.Values{}
	values.Set("status", "open")
	values.Set("assignee", "dana")

	tickets, _, err := tester.repo.Ticket.ListTickets(values)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 1 {
		t.Fatalf("Expected 1 ticket, got %d", len(tickets))
	}

	if tickets[0].Title != "login page crashes on submit" {
		t.Errorf("Expected the open ticket assigned to dana, got %q", tickets[0].Title)
	}
}

func TestListTicketsFiltersByStatusSet(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_in_filter_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	values := url.Values{}
	values.Set("status", "acknowledged,resolved")

	tickets, _, err := tester.repo.Ticket.ListTickets(values)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 2 {
		t.Errorf("Expected 2 tickets, got %d", len(tickets))
	}
}

func TestListTicketsIgnoresUnknownParams(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_unknown_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	values := url.Values{}
	values.Set("stattus", "open")

	tickets, _, err := tester.repo.Ticket.ListTickets(values)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 5 {
		t.Errorf("Expected the unknown parameter to be ignored, got %d tickets", len(tickets))
	}
}

func TestListTicketsSortsByPrioritySeverity(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_sort_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	values := url.Values{}
	values.Set("sort_by", "priority")

	tickets, _, err := tester.repo.Ticket.ListTickets(values)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 5 {
		t.Fatalf("Expected 5 tickets, got %d", len(tickets))
	}

	if tickets[0].Priority != types.TicketPriorityHigh {
		t.Errorf("Expected high priority tickets first, got %q", tickets[0].Priority)
	}

	if tickets[4].Priority != types.TicketPriorityLow {
		t.Errorf("Expected low priority tickets last, got %q", tickets[4].Priority)
	}
}

func TestListTicketsRenamedSortParams(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_sort_params_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	values := url.Values{}
	values.Set("order", "priority")

	tickets, _, err := tester.repo.Ticket.ListTickets(
		values,
		utils.WithSortParams("order", "reverse"),
	)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 5 {
		t.Fatalf("Expected 5 tickets, got %d", len(tickets))
	}

	if tickets[0].Priority != types.TicketPriorityHigh {
		t.Errorf("Expected the renamed sort parameter to be honored, got %q first", tickets[0].Priority)
	}
}

func TestListTicketsPagination(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_page_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	seedTickets(tester, t)

	tickets, paginatedResult, err := tester.repo.Ticket.ListTickets(
		url.Values{},
		utils.WithSortBy("created_at"),
		utils.WithOrder(utils.OrderAsc),
		utils.WithLimit(2),
		utils.WithOffset(2),
	)

	if err != nil {
		t.Fatalf("Expected no error after listing tickets, got %v", err)
	}

	if len(tickets) != 2 {
		t.Errorf("Expected 2 tickets on the page, got %d", len(tickets))
	}

	if paginatedResult.NumPages != 3 {
		t.Errorf("Expected 3 pages, got %d", paginatedResult.NumPages)
	}

	if paginatedResult.CurrentPage != 1 {
		t.Errorf("Expected current page 1, got %d", paginatedResult.CurrentPage)
	}

	if paginatedResult.NextPage != 2 {
		t.Errorf("Expected next page 2, got %d", paginatedResult.NextPage)
	}
}

func TestDeleteTicket(t *testing.T) {
	tester := &tester{
		dbFileName: "./ticket_delete_test.db",
	}

	setupTestEnv(tester, t)
	defer cleanup(tester, t)

	ticket := models.NewTicket()
	ticket.Title = "to be deleted"

	ticket, err := tester.repo.Ticket.CreateTicket(ticket)

	if err != nil {
		t.Fatalf("Expected no error after creating ticket, got %v", err)
	}

	if err := tester.repo.Ticket.DeleteTicket(ticket.UniqueID); err != nil {
		t.Fatalf("Expected no error after deleting ticket, got %v", err)
	}

	if _, err := tester.repo.Ticket.ReadTicket(ticket.UniqueID); err == nil {
		t.Errorf("Expected an error reading a deleted ticket")
	}
}
