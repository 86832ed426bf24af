package i18n

const (
	KeyWelcome          Key = "welcomeMessage"
	KeyAskPhone         Key = "askPhone"
	KeyPhoneVerified    Key = "phoneVerified"
	KeyPhoneNotFound    Key = "phoneNotFound"
	KeyInvalidPhone     Key = "invalidPhone"
	KeyAskAmount        Key = "askAmount"
	KeyInvalidAmount    Key = "invalidAmount"
	KeyInstantApproval  Key = "instantApproval"
	KeyNeedsVerify      Key = "needsVerification"
	KeyInstantOffer     Key = "instantOffer"
	KeyConditionalOffer Key = "conditionalOffer"
	KeyPreviewLine      Key = "previewLine"
	KeyChooseTenure     Key = "chooseTenure"
	KeyTenureBounds     Key = "tenureBounds"
	KeyLoanSummary      Key = "loanSummary"
	KeySummaryUpload    Key = "summaryUpload"
	KeySummaryConfirm   Key = "summaryConfirm"
	KeyApplicationDecl  Key = "applicationDeclined"
	KeyUploadPrompt     Key = "uploadPrompt"
	KeyFileSizeError    Key = "fileSizeError"
	KeyFileTypeError    Key = "fileTypeError"
	KeyExtractionFailed Key = "extractionFailed"
	KeySalaryMismatch   Key = "salaryMismatch"
	KeyDocumentVerified Key = "documentVerified"
	KeyConfirmReprompt  Key = "confirmReprompt"
	KeyCheckingCredit   Key = "checkingCredit"
	KeyCreditApproved   Key = "creditApproved"
	KeyCreditDeclined   Key = "creditDeclined"
	KeyGeneratingLetter Key = "generatingLetter"
	KeySanctioned       Key = "sanctioned"
	KeyFallback         Key = "chooseSuggestion"
	KeyEmptyName        Key = "emptyName"
	KeyTryLater         Key = "tryLater"
	KeyFileEmpty        Key = "fileEmpty"

	KeyRejectionAge      Key = "rejectionAge"
	KeyRejectionSalary   Key = "rejectionSalary"
	KeyRejectionCredit   Key = "rejectionCredit"
	KeyRejectionExcess   Key = "rejectionExcess"
	KeyRejectionEMIRatio Key = "rejectionEmiRatio"
	KeyRejectionScore    Key = "rejectionScore"

	KeyMonths          Key = "monthsOption"
	KeyProceed         Key = "proceed"
	KeyUploadButton    Key = "uploadButton"
	KeyContactSupport  Key = "contactSupport"
	KeyTryAnother      Key = "tryAnother"
	KeyGenerateLetter  Key = "generateLetter"
	KeyDownloadPDF     Key = "downloadPdf"
	KeyESign           Key = "eSign"
	KeySanctionSubject Key = "sanctionSubject"
	KeySanctionNotice  Key = "sanctionNotice"

	KeyAgentMaster       Key = "agentMaster"
	KeyAgentSales        Key = "agentSales"
	KeyAgentVerification Key = "agentVerification"
	KeyAgentUnderwriting Key = "agentUnderwriting"
	KeyAgentDocument     Key = "agentDocument"
	KeyAgentSanction     Key = "agentSanction"
)
