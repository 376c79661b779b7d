package service

import (
	"fmt"

	"griddesk/internal/services/api/reports/domain"
	ds "griddesk/internal/services/datasets/domain"
)

func pendingKPIs(apps []ds.PendingApplication) []domain.KPI {
	total := len(apps)
	var delaySum, critical int
	for _, a := range apps {
		delaySum += a.DelayDays
		if a.DelayDays > 60 {
			critical++
		}
	}
	avg := 0.0
	if total > 0 {
		avg = float64(delaySum) / float64(total)
	}
	critColor := "green"
	if critical > 0 {
		critColor = "red"
	}
	return []domain.KPI{
		{Label: "Pending Applications", Value: fmt.Sprintf("%d", total), Trend: "flat", Icon: "inbox", Color: "blue"},
		{Label: "Avg Delay", Value: fmt.Sprintf("%.1f days", avg), Trend: "flat", Icon: "clock", Color: "amber"},
		{Label: "Over 60 Days", Value: fmt.Sprintf("%d", critical), Trend: "flat", Icon: "alert", Color: critColor},
	}
}

func docketKPIs(dks []ds.Docket) []domain.KPI {
	open := 0
	for _, d := range dks {
		if d.Status != "Closed" {
			open++
		}
	}
	return []domain.KPI{
		{Label: "Total Dockets", Value: fmt.Sprintf("%d", len(dks)), Trend: "flat", Icon: "folder", Color: "blue"},
		{Label: "Open Dockets", Value: fmt.Sprintf("%d", open), Trend: "flat", Icon: "alert", Color: "amber"},
	}
}

func collectionKPIs(txns []ds.CollectionTxn) []domain.KPI {
	var total float64
	for _, t := range txns {
		total += t.Amount
	}
	avg := 0.0
	if len(txns) > 0 {
		avg = total / float64(len(txns))
	}
	return []domain.KPI{
		{Label: "Total Collected", Value: fmt.Sprintf("%.2f", total), Trend: "flat", Icon: "rupee", Color: "green"},
		{Label: "Receipts", Value: fmt.Sprintf("%d", len(txns)), Trend: "flat", Icon: "receipt", Color: "blue"},
		{Label: "Avg Receipt", Value: fmt.Sprintf("%.2f", avg), Trend: "flat", Icon: "scale", Color: "blue"},
	}
}

// performanceKPIs renders one card per metric row, trend against target
func performanceKPIs(metrics []ds.PerformanceMetric) []domain.KPI {
	out := make([]domain.KPI, 0, len(metrics))
	for _, m := range metrics {
		trend, icon, color := "flat", "gauge", "blue"
		switch {
		case m.Target == 0:
			// no target set, the card is informational only
		case m.Value >= m.Target:
			trend, icon, color = "up", "trending-up", "green"
		default:
			trend, icon, color = "down", "trending-down", "red"
		}
		value := fmt.Sprintf("%g", m.Value)
		if m.Unit != "" {
			value += " " + m.Unit
		}
		out = append(out, domain.KPI{Label: m.Name, Value: value, Trend: trend, Icon: icon, Color: color})
	}
	return out
}
