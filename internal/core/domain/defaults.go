package domain

// DefaultGroups returns the seeded DRE groups. The IDs match
// migrations/000002_seed_dre_groups.up.sql so the memory store and a migrated
// database expose the same chart.
func DefaultGroups() []Group {
	return []Group{
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000010", Code: "GROSS_REVENUE", Name: "Gross Revenue", Kind: KindRevenue, DisplayOrder: 10, IsActive: true},
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000020", Code: "SALES_DEDUCTIONS", Name: "Sales Deductions", Kind: KindDeduction, DisplayOrder: 20, IsActive: true},
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000030", Code: "COST_OF_SALES", Name: "Cost of Sales", Kind: KindCost, DisplayOrder: 30, IsActive: true},
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000040", Code: "SELLING_EXPENSES", Name: "Selling Expenses", Kind: KindExpense, DisplayOrder: 40, IsActive: true},
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000050", Code: "ADMINISTRATIVE_EXPENSES", Name: "Administrative Expenses", Kind: KindExpense, DisplayOrder: 50, IsActive: true},
		{GroupID: "6b1f4c1e-0000-4000-8000-000000000060", Code: "FINANCIAL_EXPENSES", Name: "Financial Expenses", Kind: KindExpense, DisplayOrder: 60, IsActive: true},
	}
}
