package domain

// Option is a value/label pair shown in dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options is the single lookup table shared by validation, persistence
// mapping and the frontend dropdowns.
type Options struct {
	BillingStatuses       []Option `json:"billingStatuses"`
	CashRequestStatuses   []Option `json:"cashRequestStatuses"`
	ProjectStatuses       []Option `json:"projectStatuses"`
	TransactionTypes      []Option `json:"transactionTypes"`
	TransactionCategories []Option `json:"transactionCategories"`
	CompanyRoles          []Option `json:"companyRoles"`
}

var billingStatusLabels = map[BillingStatus]string{
	BillingUnpaid:            "Belum Dibayar",
	BillingPaidRetentionHeld: "Dibayar (Retensi Belum Dibayarkan)",
	BillingPaid:              "Dibayar",
}

var cashRequestStatusLabels = map[CashRequestStatus]string{
	CashRequestPending:  "Menunggu Persetujuan",
	CashRequestApproved: "Disetujui",
	CashRequestRejected: "Ditolak",
}

var projectStatusLabels = map[ProjectStatus]string{
	ProjectActive:    "Berjalan",
	ProjectOnHold:    "Ditunda",
	ProjectCompleted: "Selesai",
	ProjectCancelled: "Dibatalkan",
}

var transactionTypeLabels = map[TransactionType]string{
	TransactionIncome:  "Pemasukan",
	TransactionExpense: "Pengeluaran",
}

var transactionCategoryLabels = map[TransactionCategory]string{
	CategoryMaterial:        "Material",
	CategoryLabour:          "Upah Tenaga Kerja",
	CategoryEquipment:       "Sewa Alat",
	CategorySubcontractor:   "Subkontraktor",
	CategoryOperational:     "Operasional",
	CategoryProgressPayment: "Pembayaran Termin",
	CategoryOther:           "Lainnya",
}

var companyRoleLabels = map[CompanyRole]string{
	RoleAdmin:    "Administrator",
	RoleMember:   "Anggota",
	RoleReadOnly: "Hanya Baca",
}

// BillingStatusLabel returns the display label of a billing status.
func BillingStatusLabel(s BillingStatus) string {
	return billingStatusLabels[s]
}

// AllOptions builds the lookup table in display order.
func AllOptions() Options {
	opts := Options{}
	for _, s := range BillingStatuses {
		opts.BillingStatuses = append(opts.BillingStatuses, Option{Value: s.String(), Label: billingStatusLabels[s]})
	}
	for _, s := range CashRequestStatuses {
		opts.CashRequestStatuses = append(opts.CashRequestStatuses, Option{Value: string(s), Label: cashRequestStatusLabels[s]})
	}
	for _, s := range ProjectStatuses {
		opts.ProjectStatuses = append(opts.ProjectStatuses, Option{Value: string(s), Label: projectStatusLabels[s]})
	}
	for _, t := range TransactionTypes {
		opts.TransactionTypes = append(opts.TransactionTypes, Option{Value: string(t), Label: transactionTypeLabels[t]})
	}
	for _, c := range TransactionCategories {
		opts.TransactionCategories = append(opts.TransactionCategories, Option{Value: string(c), Label: transactionCategoryLabels[c]})
	}
	for _, r := range []CompanyRole{RoleAdmin, RoleMember, RoleReadOnly} {
		opts.CompanyRoles = append(opts.CompanyRoles, Option{Value: string(r), Label: companyRoleLabels[r]})
	}
	return opts
}
