package checkeligibility

type Input struct {
	Mobile string `json:"mobile"`
	Amount int64  `json:"amount"`
}

type Output struct {
	Status           string                 `json:"status"`
	Reason           string                 `json:"reason"`
	Message          string                 `json:"message"`
	Params           map[string]interface{} `json:"params,omitempty"`
	CustomerID       string                 `json:"customerId"`
	CustomerName     string                 `json:"customerName"`
	CreditScore      int                    `json:"creditScore"`
	MonthlySalary    int64                  `json:"monthlySalary"`
	TotalExistingEMI int64                  `json:"totalExistingEmi"`
	PreApprovedLimit int64                  `json:"preApprovedLimit"`
	NeedsSalarySlip  bool                   `json:"needsSalarySlip"`
}
