package presenter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"eventSubmitter/internal/models"

	"github.com/fatih/color"
)

// Presenter renders exactly one of two mutually exclusive outcomes for a
// submission: a success line carrying the submitted event id, or an error
// line carrying the failure description.
type Presenter struct {
	out io.Writer
}

func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) InFlight() {
	fmt.Fprintln(p.out, "creating event...")
}

func (p *Presenter) Success(res *models.CreateEventResult) {
	fmt.Fprintf(p.out, "%s event created: %s\n", color.GreenString("OK"), res.EventID)

	if len(res.Data) > 0 {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, res.Data, "", "  "); err == nil {
			fmt.Fprintln(p.out, pretty.String())
		}
	}
}

func (p *Presenter) Failure(err error) {
	fmt.Fprintf(p.out, "%s %s\n", color.RedString("ERROR:"), err)
}
