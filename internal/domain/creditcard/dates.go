package creditcard

import "time"

// DaysInMonth retorna a quantidade de dias do mês informado.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ProjectDueDate projeta uma data de vencimento monthsAhead meses depois da
// data base, no dia dueDay. O dia é ajustado para o último dia do mês alvo
// quando ele não existe (dia 29 em fevereiro de ano não bissexto). Cada mês é
// ajustado de forma independente: o vencimento de março volta ao dia 29 mesmo
// que o de fevereiro tenha caído no 28.
func ProjectDueDate(base time.Time, monthsAhead, dueDay int) time.Time {
	anchor := time.Date(base.Year(), base.Month()+time.Month(monthsAhead), 1, 0, 0, 0, 0, time.UTC)

	day := dueDay
	if last := DaysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}

	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)
}

// BillingOffset devolve em quantos meses cai o primeiro vencimento de uma
// compra: compras depois do dia de corte só entram na fatura que fecha dois
// meses adiante; até o corte, entram na do mês seguinte.
func BillingOffset(purchaseDay, cutoffDay int) int {
	if purchaseDay > cutoffDay {
		return 2
	}
	return 1
}

// DateOnly normaliza para meia-noite UTC; parcelas e faturas comparam somente
// a data, nunca o horário.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
