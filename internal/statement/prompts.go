package statement

// Default prompt skeletons, one per document kind. Each contains exactly one
// {data} placeholder for the serialized table. Deployments can override any
// of them through the [prompts] config block.
var defaultPrompts = map[Kind]string{
	KindBalanceSheet: `You are a financial analyst. Analyze the following BALANCE SHEET data and generate a clear summary.

Data:
{data}

Your summary must include:
- Total Assets
- Total Liabilities
- Equity
- Any major change compared to previous periods
- Overall financial health

Provide a simple, human-friendly explanation.`,

	KindProfitLoss: `You are a financial expert. Summarize the following PROFIT AND LOSS STATEMENT.

Data:
{data}

Your summary must include:
- Revenue and trends
- Expenses
- Net profit / loss
- Year-over-year changes
- Key insights for decision making

Generate a simple summary.`,

	KindCashFlow: `You are a financial analyst. Review the CASH FLOW STATEMENT below and create a clear summary.

Data:
{data}

Your summary should include:
- Cash flow from operations
- Cash flow from investing
- Cash flow from financing
- Net cash position
- Important observations

Explain in simple language.`,
}
