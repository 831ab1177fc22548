package models

// Field names the vision model is asked to return
const (
	FieldMerchant          = "merchant"
	FieldTotalAmountStr    = "totalAmountStr"
	FieldDate              = "date"
	FieldCategory          = "category"
	FieldGSTAmountStr      = "gstAmountStr"
	FieldOtherTaxAmountStr = "otherTaxAmountStr"
	FieldTaxDeductible     = "taxDeductible"
	FieldConfidenceScore   = "confidenceScore"
	FieldLeakageRiskScore  = "leakageRiskScore"
	FieldFlagReason        = "flagReason"
	FieldSavingsInsight    = "savingsInsight"
)

// RequiredExtractionFields must be present (and non-null) in every model response
var RequiredExtractionFields = []string{
	FieldMerchant,
	FieldTotalAmountStr,
	FieldDate,
	FieldCategory,
	FieldGSTAmountStr,
	FieldOtherTaxAmountStr,
	FieldTaxDeductible,
	FieldConfidenceScore,
	FieldLeakageRiskScore,
	FieldFlagReason,
}

// RawExtraction is the loosely typed object decoded from a model response
type RawExtraction map[string]interface{}

// ReceiptExtraction is a validated and repaired extraction result
type ReceiptExtraction struct {
	Merchant          string  `json:"merchant"`
	TotalAmountStr    string  `json:"totalAmountStr"`
	Date              string  `json:"date"`
	Category          string  `json:"category"`
	GSTAmountStr      string  `json:"gstAmountStr"`
	OtherTaxAmountStr string  `json:"otherTaxAmountStr"`
	TaxDeductible     bool    `json:"taxDeductible"`
	ConfidenceScore   float64 `json:"confidenceScore"`
	LeakageRiskScore  int     `json:"leakageRiskScore"`
	FlagReason        string  `json:"flagReason"`
	SavingsInsight    string  `json:"savingsInsight"`
}

// Raw converts the record back into the loose form the validator accepts
func (r ReceiptExtraction) Raw() RawExtraction {
	return RawExtraction{
		FieldMerchant:          r.Merchant,
		FieldTotalAmountStr:    r.TotalAmountStr,
		FieldDate:              r.Date,
		FieldCategory:          r.Category,
		FieldGSTAmountStr:      r.GSTAmountStr,
		FieldOtherTaxAmountStr: r.OtherTaxAmountStr,
		FieldTaxDeductible:     r.TaxDeductible,
		FieldConfidenceScore:   r.ConfidenceScore,
		FieldLeakageRiskScore:  r.LeakageRiskScore,
		FieldFlagReason:        r.FlagReason,
		FieldSavingsInsight:    r.SavingsInsight,
	}
}

// ExtractionResult is what the receipt extractor hands back to the pipeline.
// Fallback is true when every attempt failed and Raw holds the canned record.
type ExtractionResult struct {
	Raw      RawExtraction
	Attempts int
	Fallback bool
}

// ReceiptImage is a base64 image payload sent alongside the extraction prompt
type ReceiptImage struct {
	MimeType string
	Data     string
}

// Correction records one repair applied to a candidate record
type Correction struct {
	Field  string      `json:"field"`
	From   interface{} `json:"from"`
	To     interface{} `json:"to"`
	Reason string      `json:"reason"`
}
