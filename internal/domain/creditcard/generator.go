package creditcard

import (
	"time"

	"Cartera/internal/pkg"

	"github.com/shopspring/decimal"
)

// GenerateInstallments projeta as parcelas de uma compra a partir da
// configuração do cartão. O valor é dividido em partes iguais com duas casas;
// a sobra de arredondamento fica na última parcela, de modo que a soma das
// parcelas é sempre igual ao valor da compra. Uma compra com zero parcelas
// devolve lista vazia.
func GenerateInstallments(purchase *CreditPurchase, card *Card) []*Installment {
	count := purchase.InstallmentCount
	if count <= 0 {
		return nil
	}

	per := purchase.Amount.Div(decimal.NewFromInt(int64(count))).Round(2)
	offset := BillingOffset(purchase.PurchaseDate.Day(), card.CutoffDay)

	now := time.Now()
	installments := make([]*Installment, 0, count)
	for number := 1; number <= count; number++ {
		amount := per
		if number == count {
			amount = purchase.Amount.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))
		}

		installments = append(installments, &Installment{
			Id:         pkg.GenerateULIDObject(),
			PurchaseId: purchase.Id,
			CardId:     purchase.CardId,
			Number:     number,
			DueDate:    ProjectDueDate(purchase.PurchaseDate, offset+number-1, card.DueDay),
			Amount:     amount,
			Paid:       false,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return installments
}
