package client

import (
	"fmt"
	"io"
	"review-verify/domain"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Renderer prints server answers as a borderless table.
type Renderer struct {
	out     io.Writer
	policy  domain.VerdictPolicy
	colours bool
}

func NewRenderer(out io.Writer, policy domain.VerdictPolicy, colours bool) *Renderer {
	return &Renderer{out: out, policy: policy, colours: colours}
}

func (r *Renderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// Scores renders one row per analyzed review with the verdict a browser client would show.
func (r *Renderer) Scores(results []domain.ScoreResult) {
	table := r.newTable([]string{"Review", "Fake", "AI", "Lang", "Status", "Verdict"})
	for _, result := range results {
		verdict := r.policy.Decide(result)
		table.Append([]string{
			truncate(result.ReviewText, 48),
			percent(result.FakeProbability),
			percent(result.AIProbability),
			lo.Ternary(result.Language == "", "-", result.Language),
			r.status(result, verdict),
			r.verdict(verdict),
		})
	}
	table.Render()
}

// Labels renders the batch classifier output next to its input.
func (r *Renderer) Labels(reviews []string, labels []domain.Label) {
	table := r.newTable([]string{"#", "Review", "Prediction"})
	for i, label := range labels {
		table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(reviews[i], 64),
			r.paint(label.String(), label == domain.LabelFake),
		})
	}
	table.Render()
}

func (r *Renderer) status(result domain.ScoreResult, verdict domain.Verdict) string {
	fake := r.paint(lo.Ternary(result.IsFake, "FAKE", "REAL"), result.IsFake)
	author := lo.Ternary(verdict.AIBadge, "AI-WRITTEN", "HUMAN-WRITTEN")
	return fake + " / " + r.paint(author, verdict.AIBadge)
}

func (r *Renderer) verdict(v domain.Verdict) string {
	if !v.Blocked {
		return r.paint("shown", false)
	}
	return r.paint(fmt.Sprintf("blocked (%s)", v.Reason), true)
}

func (r *Renderer) paint(s string, alarm bool) string {
	if !r.colours {
		return s
	}
	if alarm {
		return color.New(color.FgRed, color.OpBold).Render(s)
	}
	return color.New(color.FgGreen).Render(s)
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
