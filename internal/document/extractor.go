package document

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// SalarySlip is the structured content of a salary slip.
type SalarySlip struct {
	Name         string `json:"name"`
	Employer     string `json:"employer"`
	Salary       int64  `json:"salary"`
	NetPay       int64  `json:"net_pay"`
	Date         string `json:"date"`
	EmployeeID   string `json:"employee_id,omitempty"`
	Designation  string `json:"designation,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
	PFDeduction  int64  `json:"pf_deduction,omitempty"`
	TaxDeduction int64  `json:"tax_deduction,omitempty"`
}

// Result is the outcome of one extraction. A failed extraction is reported
// through Success and Errors, not through the error return of Extract.
type Result struct {
	Success        bool          `json:"success"`
	Record         *SalarySlip   `json:"data,omitempty"`
	Confidence     int           `json:"confidence"`
	ProcessingTime time.Duration `json:"processing_time_ms"`
	Errors         []string      `json:"errors,omitempty"`
}

// Extractor reads a salary slip. expectedName may be empty.
type Extractor interface {
	Extract(ctx context.Context, upload Upload, expectedName string) (*Result, error)
}

var sampleSlips = []SalarySlip{
	{Name: "Rahul Sharma", Employer: "TCS Limited", Salary: 75000, NetPay: 62500, Date: "2024-11-30", EmployeeID: "TCS001234", Designation: "Software Engineer", PFDeduction: 9000, TaxDeduction: 3500},
	{Name: "Priya Patel", Employer: "Wipro Limited", Salary: 55000, NetPay: 46500, Date: "2024-11-30", EmployeeID: "WIP005678", Designation: "Marketing Manager", PFDeduction: 6600, TaxDeduction: 1900},
	{Name: "Amit Kumar", Employer: "Deloitte India", Salary: 95000, NetPay: 78000, Date: "2024-11-30", EmployeeID: "DEL009012", Designation: "Senior Consultant", PFDeduction: 11400, TaxDeduction: 5600},
	{Name: "Sneha Reddy", Employer: "Accenture", Salary: 42000, NetPay: 36500, Date: "2024-11-30", EmployeeID: "ACC003456", Designation: "Business Analyst", PFDeduction: 5040, TaxDeduction: 460},
	{Name: "Rajesh Gupta", Employer: "L&T Infotech", Salary: 125000, NetPay: 98000, Date: "2024-11-30", EmployeeID: "LTI007890", Designation: "General Manager", PFDeduction: 15000, TaxDeduction: 12000},
}

// MockExtractor returns canned salary slips after a simulated processing
// delay. It stands in for an OCR service.
type MockExtractor struct {
	limits     Limits
	minLatency time.Duration
	maxLatency time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

type MockOption func(*MockExtractor)

// WithLatency sets the processing delay range. Zero disables the delay.
func WithLatency(min, max time.Duration) MockOption {
	return func(m *MockExtractor) {
		m.minLatency, m.maxLatency = min, max
	}
}

// WithSeed makes record selection and confidence reproducible.
func WithSeed(seed int64) MockOption {
	return func(m *MockExtractor) {
		m.rnd = rand.New(rand.NewSource(seed))
	}
}

func WithLimits(limits Limits) MockOption {
	return func(m *MockExtractor) {
		m.limits = limits
	}
}

func NewMockExtractor(opts ...MockOption) *MockExtractor {
	m := &MockExtractor{
		limits:     DefaultLimits(),
		minLatency: 500 * time.Millisecond,
		maxLatency: 2000 * time.Millisecond,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockExtractor) Extract(ctx context.Context, upload Upload, expectedName string) (*Result, error) {
	latency := m.latency()
	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := Validate(upload, m.limits); err != nil {
		return &Result{ProcessingTime: latency, Errors: []string{err.Error()}}, nil
	}

	slip := m.pick(expectedName)
	if err := ValidateRecord(slip); err != nil {
		return &Result{ProcessingTime: latency, Errors: []string{err.Error()}}, nil
	}

	return &Result{
		Success:        true,
		Record:         &slip,
		Confidence:     m.confidence(),
		ProcessingTime: latency,
	}, nil
}

func (m *MockExtractor) pick(expectedName string) SalarySlip {
	if name := strings.ToLower(strings.TrimSpace(expectedName)); name != "" {
		for _, slip := range sampleSlips {
			if strings.Contains(strings.ToLower(slip.Name), name) {
				return slip
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return sampleSlips[m.rnd.Intn(len(sampleSlips))]
}

// confidence is a percentage in [85, 97].
func (m *MockExtractor) confidence() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return 85 + m.rnd.Intn(13)
}

func (m *MockExtractor) latency() time.Duration {
	if m.maxLatency <= m.minLatency {
		return m.minLatency
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minLatency + time.Duration(m.rnd.Int63n(int64(m.maxLatency-m.minLatency)))
}
