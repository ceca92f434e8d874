package httpapi

// Response shapes. Domain entities stay transport-agnostic; these mirror
// them with JSON tags and drop the owner ID, which is implied by the caller.

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/duesoon"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/overview"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/snapshot"
)

type creditCardDTO struct {
	ID             uuid.UUID       `json:"id"`
	DisplayName    string          `json:"displayName"`
	Balance        decimal.Decimal `json:"balance"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time      `json:"nextDueDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toCreditCardDTO(c *domain.CreditCard) creditCardDTO {
	return creditCardDTO{
		ID:             c.ID,
		DisplayName:    c.DisplayName,
		Balance:        c.Balance,
		CreditLimit:    c.CreditLimit,
		MinimumPayment: c.MinimumPayment,
		InterestRate:   c.InterestRate,
		NextDueDate:    c.NextDueDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCreditCardDTOs(cards []*domain.CreditCard) []creditCardDTO {
	out := make([]creditCardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCreditCardDTO(c))
	}
	return out
}

type loanDTO struct {
	ID             uuid.UUID       `json:"id"`
	DisplayName    string          `json:"displayName"`
	Lender         string          `json:"lender,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time      `json:"nextDueDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toLoanDTO(l *domain.Loan) loanDTO {
	return loanDTO{
		ID:             l.ID,
		DisplayName:    l.DisplayName,
		Lender:         l.Lender,
		Balance:        l.Balance,
		OriginalAmount: l.OriginalAmount,
		MonthlyPayment: l.MonthlyPayment,
		InterestRate:   l.InterestRate,
		NextDueDate:    l.NextDueDate,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toLoanDTOs(loans []*domain.Loan) []loanDTO {
	out := make([]loanDTO, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanDTO(l))
	}
	return out
}

type incomeSourceDTO struct {
	ID                uuid.UUID       `json:"id"`
	Source            string          `json:"source"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
	NextPayDate       *time.Time      `json:"nextPayDate,omitempty"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toIncomeSourceDTO(s *domain.IncomeSource) incomeSourceDTO {
	return incomeSourceDTO{
		ID:                s.ID,
		Source:            s.Source,
		Amount:            s.Amount,
		Frequency:         string(s.Frequency),
		MonthlyEquivalent: s.MonthlyAmount(),
		NextPayDate:       s.NextPayDate,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toIncomeSourceDTOs(sources []*domain.IncomeSource) []incomeSourceDTO {
	out := make([]incomeSourceDTO, 0, len(sources))
	for _, s := range sources {
		out = append(out, toIncomeSourceDTO(s))
	}
	return out
}

type expenseDTO struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
	DueDate           *time.Time      `json:"dueDate,omitempty"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toExpenseDTO(e *domain.Expense) expenseDTO {
	return expenseDTO{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		Amount:            e.Amount,
		Frequency:         string(e.Frequency),
		MonthlyEquivalent: e.MonthlyAmount(),
		DueDate:           e.DueDate,
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toExpenseDTOs(expenses []*domain.Expense) []expenseDTO {
	out := make([]expenseDTO, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseDTO(e))
	}
	return out
}

type assetDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toAssetDTO(a *domain.Asset) assetDTO {
	return assetDTO{
		ID:        a.ID,
		Name:      a.Name,
		Category:  string(a.Category),
		Value:     a.Value,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAssetDTOs(assets []*domain.Asset) []assetDTO {
	out := make([]assetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetDTO(a))
	}
	return out
}

type liabilityDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toLiabilityDTO(l *domain.Liability) liabilityDTO {
	return liabilityDTO{
		ID:        l.ID,
		Name:      l.Name,
		Category:  string(l.Category),
		Balance:   l.Balance,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLiabilityDTOs(liabilities []*domain.Liability) []liabilityDTO {
	out := make([]liabilityDTO, 0, len(liabilities))
	for _, l := range liabilities {
		out = append(out, toLiabilityDTO(l))
	}
	return out
}

type paymentRecordDTO struct {
	ID                 uuid.UUID       `json:"id"`
	AccountID          uuid.UUID       `json:"accountId"`
	AccountType        string          `json:"accountType"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	PaidDate           *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	ConfirmationNumber string          `json:"confirmationNumber,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func toPaymentRecordDTO(p *domain.PaymentRecord) paymentRecordDTO {
	return paymentRecordDTO{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		AccountType:        string(p.AccountType),
		Amount:             p.Amount,
		Status:             string(p.Status),
		PaidDate:           p.PaidDate,
		PaymentMethod:      p.PaymentMethod,
		ConfirmationNumber: p.ConfirmationNumber,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toPaymentRecordDTOs(records []*domain.PaymentRecord) []paymentRecordDTO {
	out := make([]paymentRecordDTO, 0, len(records))
	for _, p := range records {
		out = append(out, toPaymentRecordDTO(p))
	}
	return out
}

type dueItemDTO struct {
	AccountID     uuid.UUID       `json:"accountId"`
	AccountType   string          `json:"accountType"`
	DisplayName   string          `json:"displayName"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	NextDueDate   *time.Time      `json:"nextDueDate,omitempty"`
	DaysUntilDue  int             `json:"daysUntilDue"`
	DueLabel      string          `json:"dueLabel"`
}

func toDueItemDTOs(items []duesoon.DueItem) []dueItemDTO {
	out := make([]dueItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dueItemDTO{
			AccountID:     item.Account.ID,
			AccountType:   string(item.Account.AccountType),
			DisplayName:   item.Account.DisplayName,
			Balance:       item.Account.Balance,
			PaymentAmount: item.Account.PaymentAmount,
			InterestRate:  item.Account.InterestRate,
			NextDueDate:   item.Account.NextDueDate,
			DaysUntilDue:  item.DaysUntilDue,
			DueLabel:      item.DueLabel,
		})
	}
	return out
}

type incomeItemDTO struct {
	SourceID     uuid.UUID       `json:"sourceId"`
	Source       string          `json:"source"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
	NextPayDate  *time.Time      `json:"nextPayDate,omitempty"`
	DaysUntilPay int             `json:"daysUntilPay"`
	PayLabel     string          `json:"payLabel"`
}

func toIncomeItemDTOs(items []duesoon.IncomeItem) []incomeItemDTO {
	out := make([]incomeItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, incomeItemDTO{
			SourceID:     item.Source.ID,
			Source:       item.Source.Source,
			Amount:       item.Source.Amount,
			Frequency:    string(item.Source.Frequency),
			NextPayDate:  item.Source.NextPayDate,
			DaysUntilPay: item.DaysUntilPay,
			PayLabel:     item.PayLabel,
		})
	}
	return out
}

type metricsDTO struct {
	TotalDebt         decimal.Decimal `json:"totalDebt"`
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses   decimal.Decimal `json:"monthlyExpenses"`
	AvailableCash     decimal.Decimal `json:"availableCash"`
	TotalCreditLimit  decimal.Decimal `json:"totalCreditLimit"`
	TotalCreditUsed   decimal.Decimal `json:"totalCreditUsed"`
	AvailableCredit   decimal.Decimal `json:"availableCredit"`
	CreditUtilization decimal.Decimal `json:"creditUtilization"`
	TotalLiquidity    decimal.Decimal `json:"totalLiquidity"`
}

func toMetricsDTO(m *overview.Metrics) metricsDTO {
	return metricsDTO{
		TotalDebt:         m.TotalDebt,
		MonthlyIncome:     m.MonthlyIncome,
		MonthlyExpenses:   m.MonthlyExpenses,
		AvailableCash:     m.AvailableCash,
		TotalCreditLimit:  m.TotalCreditLimit,
		TotalCreditUsed:   m.TotalCreditUsed,
		AvailableCredit:   m.AvailableCredit,
		CreditUtilization: m.CreditUtilization,
		TotalLiquidity:    m.TotalLiquidity,
	}
}

type snapshotDTO struct {
	ID               uuid.UUID                  `json:"id"`
	SnapshotDate     time.Time                  `json:"snapshotDate"`
	AssetTotals      map[string]decimal.Decimal `json:"assetTotals"`
	LiabilityTotals  map[string]decimal.Decimal `json:"liabilityTotals"`
	TotalAssets      decimal.Decimal            `json:"totalAssets"`
	TotalLiabilities decimal.Decimal            `json:"totalLiabilities"`
	NetWorth         decimal.Decimal            `json:"netWorth"`
	MonthOverMonth   *decimal.Decimal           `json:"monthOverMonth,omitempty"`
	YearOverYear     *decimal.Decimal           `json:"yearOverYear,omitempty"`
}

func toSnapshotDTO(s *domain.NetWorthSnapshot) snapshotDTO {
	assetTotals := make(map[string]decimal.Decimal, len(s.AssetTotals))
	for category, total := range s.AssetTotals {
		assetTotals[string(category)] = total
	}
	liabilityTotals := make(map[string]decimal.Decimal, len(s.LiabilityTotals))
	for category, total := range s.LiabilityTotals {
		liabilityTotals[string(category)] = total
	}
	return snapshotDTO{
		ID:               s.ID,
		SnapshotDate:     s.SnapshotDate,
		AssetTotals:      assetTotals,
		LiabilityTotals:  liabilityTotals,
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
	}
}

func toTrendDTOs(trends []snapshot.Trend) []snapshotDTO {
	out := make([]snapshotDTO, 0, len(trends))
	for _, trend := range trends {
		dto := toSnapshotDTO(trend.Snapshot)
		dto.MonthOverMonth = trend.MonthOverMonth
		dto.YearOverYear = trend.YearOverYear
		out = append(out, dto)
	}
	return out
}

type businessProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toBusinessProfileDTO(b *domain.BusinessProfile) businessProfileDTO {
	return businessProfileDTO{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toBusinessProfileDTOs(profiles []*domain.BusinessProfile) []businessProfileDTO {
	out := make([]businessProfileDTO, 0, len(profiles))
	for _, b := range profiles {
		out = append(out, toBusinessProfileDTO(b))
	}
	return out
}

type businessRevenueDTO struct {
	ID                uuid.UUID       `json:"id"`
	BusinessProfileID *uuid.UUID      `json:"businessProfileId,omitempty"`
	Source            string          `json:"source"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
	NextPayDate       *time.Time      `json:"nextPayDate,omitempty"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toBusinessRevenueDTO(r *domain.BusinessRevenue) businessRevenueDTO {
	return businessRevenueDTO{
		ID:                r.ID,
		BusinessProfileID: r.BusinessProfileID,
		Source:            r.Source,
		Amount:            r.Amount,
		Frequency:         string(r.Frequency),
		MonthlyEquivalent: r.MonthlyAmount(),
		NextPayDate:       r.NextPayDate,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toBusinessRevenueDTOs(revenues []*domain.BusinessRevenue) []businessRevenueDTO {
	out := make([]businessRevenueDTO, 0, len(revenues))
	for _, r := range revenues {
		out = append(out, toBusinessRevenueDTO(r))
	}
	return out
}

type businessExpenseDTO struct {
	ID                uuid.UUID       `json:"id"`
	BusinessProfileID *uuid.UUID      `json:"businessProfileId,omitempty"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
	DueDate           *time.Time      `json:"dueDate,omitempty"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toBusinessExpenseDTO(e *domain.BusinessExpense) businessExpenseDTO {
	return businessExpenseDTO{
		ID:                e.ID,
		BusinessProfileID: e.BusinessProfileID,
		Name:              e.Name,
		Category:          e.Category,
		Amount:            e.Amount,
		Frequency:         string(e.Frequency),
		MonthlyEquivalent: e.MonthlyAmount(),
		DueDate:           e.DueDate,
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toBusinessExpenseDTOs(expenses []*domain.BusinessExpense) []businessExpenseDTO {
	out := make([]businessExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toBusinessExpenseDTO(e))
	}
	return out
}

type vendorDTO struct {
	ID                uuid.UUID  `json:"id"`
	BusinessProfileID *uuid.UUID `json:"businessProfileId,omitempty"`
	Name              string     `json:"name"`
	ContactName       string     `json:"contactName,omitempty"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toVendorDTO(v *domain.Vendor) vendorDTO {
	return vendorDTO{
		ID:                v.ID,
		BusinessProfileID: v.BusinessProfileID,
		Name:              v.Name,
		ContactName:       v.ContactName,
		Email:             v.Email,
		Phone:             v.Phone,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toVendorDTOs(vendors []*domain.Vendor) []vendorDTO {
	out := make([]vendorDTO, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorDTO(v))
	}
	return out
}

type purchaseOrderItemDTO struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type purchaseOrderDTO struct {
	ID                uuid.UUID              `json:"id"`
	BusinessProfileID *uuid.UUID             `json:"businessProfileId,omitempty"`
	VendorID          uuid.UUID              `json:"vendorId"`
	OrderNumber       string                 `json:"orderNumber"`
	Status            string                 `json:"status"`
	OrderDate         time.Time              `json:"orderDate"`
	Items             []purchaseOrderItemDTO `json:"items"`
	Total             decimal.Decimal        `json:"total"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

func toPurchaseOrderDTO(o *domain.PurchaseOrder) purchaseOrderDTO {
	items := make([]purchaseOrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, purchaseOrderItemDTO{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return purchaseOrderDTO{
		ID:                o.ID,
		BusinessProfileID: o.BusinessProfileID,
		VendorID:          o.VendorID,
		OrderNumber:       o.OrderNumber,
		Status:            string(o.Status),
		OrderDate:         o.OrderDate,
		Items:             items,
		Total:             o.Total(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toPurchaseOrderDTOs(orders []*domain.PurchaseOrder) []purchaseOrderDTO {
	out := make([]purchaseOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toPurchaseOrderDTO(o))
	}
	return out
}
