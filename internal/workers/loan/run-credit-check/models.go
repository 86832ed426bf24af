package runcreditcheck

type Input struct {
	EMI            int64 `json:"emi"`
	MonthlySalary  int64 `json:"monthlySalary"`
	CreditScore    int   `json:"creditScore"`
	ExistingEMI    int64 `json:"existingEmi,omitempty"`
	ThrowOnDecline bool  `json:"throwOnDecline,omitempty"`
}

type Output struct {
	Approved bool    `json:"approved"`
	Reason   string  `json:"reason,omitempty"`
	Ratio    float64 `json:"emiRatio"`
	Message  string  `json:"message"`
}
