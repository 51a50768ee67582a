package util

import (
	"fmt"
	"time"
)

var ptBRWeekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var ptBRMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDatePtBR renders "quarta-feira, 14 de outubro de 2026".
func FormatLongDatePtBR(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		ptBRWeekdays[t.Weekday()], t.Day(), ptBRMonths[t.Month()-1], t.Year())
}

// FormatShortDatePtBR renders "14/10/2026".
func FormatShortDatePtBR(t time.Time) string {
	return t.Format("02/01/2006")
}
