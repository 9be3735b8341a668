package statement

import (
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
)

func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	return &model.Bill{
		ID:           dbBill.BillID,
		ConnectionID: dbBill.ConnectionID,
		Period: model.Period{
			Month: int(dbBill.BillingMonth),
			Year:  int(dbBill.BillingYear),
		},
		IssueDate:          repository.ToDate(dbBill.BillIssueDate),
		DueDate:            repository.ToDate(dbBill.DueDate),
		NetPeakUnits:       repository.ToDecimal(dbBill.NetPeakUnits),
		NetOffPeakUnits:    repository.ToDecimal(dbBill.NetOffPeakUnits),
		ImportPeakUnits:    repository.ToDecimal(dbBill.ImportPeakUnits),
		ImportOffPeakUnits: repository.ToDecimal(dbBill.ImportOffPeakUnits),
		TotalBeforeDueDate: repository.ToDecimal(dbBill.TotalAmountBeforeDueDate),
		TotalAfterDueDate:  repository.ToDecimal(dbBill.TotalAmountAfterDueDate),
		Arrears:            repository.ToDecimal(dbBill.Arrears),
		TaxAmount:          repository.ToDecimal(dbBill.TaxAmount),
	}
}
