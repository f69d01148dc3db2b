package models

import "strings"

// StageLabelTable maps hook numbers to human-readable stage labels.
// Labels are display data only and are never persisted; stored rows key off
// the hook number, so a table can be re-labelled without touching data.
type StageLabelTable struct {
	Version string
	labels  [HookCount]string
}

// Label returns the label for h, or "" when h is out of range.
func (t *StageLabelTable) Label(h HookType) string {
	if !h.Valid() {
		return ""
	}
	return t.labels[h.Index()]
}

// Lookup resolves a label (case-insensitive, surrounding spaces ignored) back to its hook.
func (t *StageLabelTable) Lookup(label string) (HookType, bool) {
	needle := strings.TrimSpace(label)
	for i, l := range t.labels {
		if strings.EqualFold(l, needle) {
			return HookType(i + 1), true
		}
	}
	return 0, false
}

// Labels returns a copy of all labels ordered by hook number.
func (t *StageLabelTable) Labels() []string {
	out := make([]string, HookCount)
	copy(out, t.labels[:])
	return out
}

// DealStageLabels is the sales-funnel taxonomy used for deal listings and stage lookup.
var DealStageLabels = &StageLabelTable{
	Version: "funnel-ru-v1",
	labels: [HookCount]string{
		"Все сделки",
		"Без статуса",
		"Без даты",
		"Без региона",
		"Без суммы",
		"Без адреса",
		"Все готово",
		"МСК",
		"СПб",
		"Регион",
		"Звоним без предоплаты",
		"Звоним без предоплаты несколько товаров",
		"Подтвердил заказ без предоплаты",
		"Отменил заказ без предоплаты",
		"Не взял трубку без предоплаты",
		"Звоним с предоплатой",
		"Звоним с предоплатой несколько товаров",
		"Подтвердил заказ с предоплатой",
		"Отменил заказ с предоплатой",
		"Не взял трубку с предоплатой",
		"Звоним регион",
		"Подтвердил заказ регион",
		"Отменил заказ регион",
		"Не взял трубку регион",
		"Непонятно",
	},
}

// DashboardStageLabels is the taxonomy shown next to the hookN_count columns on the dashboard.
// It evolves independently of DealStageLabels.
var DashboardStageLabels = &StageLabelTable{
	Version: "dashboard-en-v1",
	labels: [HookCount]string{
		"All deals",
		"No status",
		"No date",
		"No region",
		"No amount",
		"No address",
		"Ready",
		"Moscow",
		"Saint Petersburg",
		"Region",
		"Calling, no prepayment",
		"Calling, no prepayment, multiple items",
		"Confirmed, no prepayment",
		"Cancelled, no prepayment",
		"No answer, no prepayment",
		"Calling, prepaid",
		"Calling, prepaid, multiple items",
		"Confirmed, prepaid",
		"Cancelled, prepaid",
		"No answer, prepaid",
		"Calling, region",
		"Confirmed, region",
		"Cancelled, region",
		"No answer, region",
		"Unclear",
	},
}
