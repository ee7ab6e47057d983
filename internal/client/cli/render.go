package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

const dateLayout = "2006-01-02"

func (a *App) renderOptions(options []models.LovRef) {
	if len(options) == 0 {
		a.println("(no options)")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME")
	for _, o := range options {
		fmt.Fprintf(tw, "%s\t%s\n", o.Code, o.Name)
	}
	_ = tw.Flush()
}

func (a *App) renderUsers(users []models.UsersListItem) {
	if len(users) == 0 {
		a.println("No users.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UUID\tUSERNAME\tNAME\tRANK\tROLES\tJOINED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.UUID, u.Username, dash(u.Name), dash(refName(u.Rank)), dash(refNames(u.Roles)), joined(u))
	}
	_ = tw.Flush()
}

func (a *App) renderProfile(u *models.UserSummary) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "UUID:\t%s\n", u.UUID)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Name:\t%s\n", dash(u.Name))
	fmt.Fprintf(tw, "Rank:\t%s\n", dash(refName(u.Rank)))
	fmt.Fprintf(tw, "Roles:\t%s\n", dash(refNames(u.Roles)))
	fmt.Fprintf(tw, "Joined:\t%s\n", joined(*u))
	_ = tw.Flush()
}

func refName(r *models.LovRef) string {
	if r == nil {
		return ""
	}
	return r.Name
}

func refNames(refs []models.LovRef) string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

func joined(u models.UserSummary) string {
	if u.DateCreated.IsZero() {
		return "-"
	}
	return u.DateCreated.Format(dateLayout)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
