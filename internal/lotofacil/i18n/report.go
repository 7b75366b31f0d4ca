package i18n

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReportMeta describes how a batch was produced.
type ReportMeta struct {
	TicketSize int
	Seed       int64
	SeedSource string
	RollMode   string
}

// WriteReport renders result as a localized plain-text report.
//
// Numbers are laid out five per row like the printed betting slip and
// suffixed with * for Fibonacci numbers and # for frame numbers.
func WriteReport(w io.Writer, tag language.Tag, result domain.Result, meta ReportMeta) error {
	p := message.NewPrinter(tag)
	var b strings.Builder

	b.WriteString(p.Sprintf(ReportTitleKey, len(result.Batch), meta.TicketSize))
	b.WriteByte('\n')
	b.WriteString(p.Sprintf(ReportSeedKey, strconv.FormatInt(meta.Seed, 10), meta.SeedSource, meta.RollMode))
	b.WriteByte('\n')
	stats := result.Statistics
	b.WriteString(p.Sprintf(ReportAveragesKey, stats.AvgEven, stats.AvgOdd, stats.AvgFibonacci, stats.AvgFrame))
	b.WriteString("\n\n")

	for _, entry := range result.Batch {
		b.WriteString(p.Sprintf(ReportTicketKey, entry.ID, entry.Statistics.Sum))
		b.WriteByte('\n')
		writeGrid(&b, entry.Ticket)
		s := entry.Statistics
		b.WriteString("  ")
		b.WriteString(p.Sprintf(ReportTicketStatKey, s.Even, s.Odd, s.Fibonacci, s.Frame))
		b.WriteString("\n\n")
	}
	b.WriteString(p.Sprintf(ReportLegendKey))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEvaluation renders a single-ticket evaluation.
func WriteEvaluation(w io.Writer, tag language.Tag, ticket domain.Ticket, evaluation domain.Evaluation) error {
	p := message.NewPrinter(tag)
	var b strings.Builder

	writeGrid(&b, ticket)
	s := evaluation.Statistics
	b.WriteString("  ")
	b.WriteString(p.Sprintf(ReportTicketStatKey, s.Even, s.Odd, s.Fibonacci, s.Frame))
	b.WriteByte('\n')
	if evaluation.Accepted {
		b.WriteString(p.Sprintf(EvaluationKey))
	} else {
		names := make([]string, 0, len(evaluation.Violations))
		for _, v := range evaluation.Violations {
			names = append(names, string(v))
		}
		b.WriteString(p.Sprintf(EvaluationRejectKey, strings.Join(names, ", ")))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGrid(b *strings.Builder, ticket domain.Ticket) {
	for i, n := range ticket {
		if i%5 == 0 {
			b.WriteString("  ")
		}
		marks := domain.Classify(n)
		suffix := ""
		if marks.Fibonacci {
			suffix += "*"
		}
		if marks.Frame {
			suffix += "#"
		}
		fmt.Fprintf(b, "%02d%-3s", n, suffix)
		if i%5 == 4 || i == len(ticket)-1 {
			b.WriteByte('\n')
		}
	}
}
