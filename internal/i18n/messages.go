package i18n

var english = map[Key]string{
	KeyWelcome:          "🙏 Namaste! Welcome to Tata Capital.\n\nI'm your AI Personal Loan Assistant. May I know your name?",
	KeyEmptyName:        "May I know your name?",
	KeyAskPhone:         "Thank you, {.name}! 😊\n\nPlease share your 10-digit mobile number for verification.",
	KeyPhoneVerified:    "✅ Mobile verified successfully!\n\n👤 {.name}\n📊 Credit Score: {.score}/900\n💰 Pre-approved: ₹{.limit}",
	KeyPhoneNotFound:    "❌ Mobile number not found in our records.\n\nPlease try again or contact our support team.",
	KeyInvalidPhone:     "Please enter a valid 10-digit mobile number.",
	KeyAskAmount:        "🎉 Great news, {.name}!\n\nYou have a pre-approved personal loan offer of ₹{.amount}!\n\nHow much would you like to borrow?",
	KeyInvalidAmount:    "Please enter a valid loan amount (e.g., 300000)",
	KeyInstantApproval:  "✨ Instant approval available!",
	KeyNeedsVerify:      "Needs salary slip verification",
	KeyInstantOffer:     "Perfect! ₹{.amount} {.status}\n\nChoose your preferred tenure:\n\n{.previews}",
	KeyConditionalOffer: "Loan Amount: ₹{.amount}\n\n{.status}\n\nFirst, let's choose your preferred tenure:",
	KeyPreviewLine:      "📅 {.months} months: ₹{.emi}/month",
	KeyChooseTenure:     "Choose your preferred tenure:",
	KeyTenureBounds:     "Please choose a tenure between {.min} and {.max} months.",
	KeyLoanSummary:      "📋 Loan Summary\n\nAmount: ₹{.amount}\nTenure: {.tenure} months\nMonthly EMI: ₹{.emi}\nEMI/Income Ratio: {.ratio}%\n\n{.next}",
	KeySummaryUpload:    "📄 Please upload your salary slip to proceed",
	KeySummaryConfirm:   "✅ Ready to proceed with credit check?",
	KeyApplicationDecl:  "❌ Application Declined\n\n{.reason}\n\nPlease contact our support team for assistance.",
	KeyUploadPrompt:     "📎 Click the upload button below to submit your salary slip (PDF, JPG, or PNG format).",
	KeyFileSizeError:    "File must be under 5MB",
	KeyFileTypeError:    "Unsupported file type. Please upload a PDF, JPG, or PNG file.",
	KeyExtractionFailed: "❌ Document verification failed\n\n{.errors}\n\nPlease upload a clearer copy of your salary slip.",
	KeySalaryMismatch:   "❌ Document verification failed\n\nSalary on the slip (₹{.extracted}) does not match our records (₹{.expected}).",
	KeyDocumentVerified: "✅ Document verified successfully!\n\n💰 Salary: ₹{.salary}\n✨ Status: Verified\n\nProceeding to credit check...",
	KeyConfirmReprompt:  "Reply \"Yes, Proceed\" when you are ready for the credit check.",
	KeyCheckingCredit:   "🔍 Running comprehensive credit check...\n\nThis will take a few moments.",
	KeyCreditApproved:   "✅ CREDIT CHECK APPROVED!\n\n📊 Credit Score: {.score}/900\n💳 EMI/Income Ratio: {.ratio}%\n✨ Status: Excellent\n\nReady to generate your sanction letter?",
	KeyCreditDeclined:   "❌ Credit Check Declined\n\nReason: {.reason}\n\nPlease contact support for assistance.",
	KeyGeneratingLetter: "📄 Generating your sanction letter...\n\nPlease wait while we prepare your documents.",
	KeySanctioned:       "🎊 CONGRATULATIONS {.name}!\n\n✅ YOUR LOAN IS SANCTIONED!\n\n📋 Reference: {.reference}\n💰 Amount: ₹{.amount}\n📅 Tenure: {.tenure} months\n💳 Monthly EMI: ₹{.emi}\n📊 Total Payment: ₹{.total}\n\n⏱️ Funds will be disbursed within 24 hours!\n\nThank you for choosing Tata Capital! 🎉",
	KeyFallback:         "Please choose from the suggestions below.",
	KeyTryLater:         "⚠️ We could not reach our records right now. Please try again in a moment.",
	KeyFileEmpty:        "The uploaded file is empty. Please choose your salary slip again.",

	KeyRejectionAge:      "Age restriction: {.age} years (Required: 21-60)",
	KeyRejectionSalary:   "Monthly salary below ₹15,000",
	KeyRejectionCredit:   "Credit score {.score} is below 700",
	KeyRejectionExcess:   "Amount exceeds 2x pre-approved limit",
	KeyRejectionEMIRatio: "EMI/Income ratio exceeds 50%",
	KeyRejectionScore:    "Credit score below minimum requirement",

	KeyMonths:          "{.months} months",
	KeyProceed:         "Yes, Proceed",
	KeyUploadButton:    "Upload Document",
	KeyContactSupport:  "Contact Support",
	KeyTryAnother:      "Try Another Amount",
	KeyGenerateLetter:  "Generate Sanction Letter",
	KeyDownloadPDF:     "Download PDF",
	KeyESign:           "E-Sign Now",
	KeySanctionSubject: "Your Tata Capital loan is sanctioned ({.reference})",
	KeySanctionNotice:  "Dear {.name}, your personal loan of ₹{.amount} is sanctioned. Ref {.reference}. EMI ₹{.emi} for {.tenure} months. Funds will be disbursed within 24 hours.",

	KeyAgentMaster:       "Master Agent",
	KeyAgentSales:        "Sales Agent",
	KeyAgentVerification: "Verification Agent",
	KeyAgentUnderwriting: "Underwriting Agent",
	KeyAgentDocument:     "Document Agent",
	KeyAgentSanction:     "Sanction Agent",
}

var hindi = map[Key]string{
	KeyWelcome:          "🙏 नमस्ते! टाटा कैपिटल में आपका स्वागत है।\n\nमैं आपका AI पर्सनल लोन सहायक हूं। क्या मैं आपका नाम जान सकता हूं?",
	KeyEmptyName:        "क्या मैं आपका नाम जान सकता हूं?",
	KeyAskPhone:         "धन्यवाद, {.name}! 😊\n\nकृपया सत्यापन के लिए अपना पंजीकृत 10 अंकों का मोबाइल नंबर साझा करें।",
	KeyPhoneVerified:    "✅ मोबाइल सफलतापूर्वक सत्यापित!\n\n👤 {.name}\n📊 क्रेडिट स्कोर: {.score}/900\n💰 पूर्व-स्वीकृत सीमा: ₹{.limit}",
	KeyPhoneNotFound:    "❌ मोबाइल नंबर हमारे रिकॉर्ड में नहीं मिला।\n\nकृपया पुनः प्रयास करें या सहायता से संपर्क करें।",
	KeyInvalidPhone:     "कृपया एक वैध 10 अंकों का मोबाइल नंबर दर्ज करें।",
	KeyAskAmount:        "🎉 शुभ समाचार, {.name}!\n\nआपके पास ₹{.amount} की पूर्व-स्वीकृत पेशकश है!\n\nआप कितना उधार लेना चाहेंगे?",
	KeyInvalidAmount:    "कृपया एक वैध लोन राशि दर्ज करें (जैसे, 300000)",
	KeyInstantApproval:  "✨ तत्काल मंजूरी उपलब्ध!",
	KeyNeedsVerify:      "वेतन पर्ची सत्यापन आवश्यक",
	KeyInstantOffer:     "बढ़िया! ₹{.amount} {.status}\n\nअपनी पसंदीदा अवधि चुनें:\n\n{.previews}",
	KeyConditionalOffer: "लोन राशि: ₹{.amount}\n\n{.status}\n\nपहले, अपनी पसंदीदा अवधि चुनें:",
	KeyPreviewLine:      "📅 {.months} महीने: ₹{.emi}/माह",
	KeyChooseTenure:     "अपनी पसंदीदा अवधि चुनें:",
	KeyTenureBounds:     "कृपया {.min} से {.max} महीने के बीच की अवधि चुनें।",
	KeyLoanSummary:      "📋 लोन सारांश\n\nराशि: ₹{.amount}\nअवधि: {.tenure} महीने\nमासिक EMI: ₹{.emi}\nEMI/आय अनुपात: {.ratio}%\n\n{.next}",
	KeySummaryUpload:    "📄 आगे बढ़ने के लिए कृपया अपनी वेतन पर्ची अपलोड करें",
	KeySummaryConfirm:   "✅ क्या आप क्रेडिट जांच के लिए तैयार हैं?",
	KeyApplicationDecl:  "❌ आवेदन अस्वीकृत\n\n{.reason}\n\nसहायता के लिए कृपया हमारी सपोर्ट टीम से संपर्क करें।",
	KeyUploadPrompt:     "📎 अपनी वेतन पर्ची (PDF, JPG या PNG) जमा करने के लिए नीचे अपलोड बटन पर क्लिक करें।",
	KeyFileSizeError:    "फ़ाइल 5MB से कम होनी चाहिए",
	KeyFileTypeError:    "असमर्थित फ़ाइल प्रकार। कृपया PDF, JPG या PNG फ़ाइल अपलोड करें।",
	KeyExtractionFailed: "❌ दस्तावेज़ सत्यापन विफल\n\n{.errors}\n\nकृपया अपनी वेतन पर्ची की स्पष्ट प्रति अपलोड करें।",
	KeySalaryMismatch:   "❌ दस्तावेज़ सत्यापन विफल\n\nपर्ची पर वेतन (₹{.extracted}) हमारे रिकॉर्ड (₹{.expected}) से मेल नहीं खाता।",
	KeyDocumentVerified: "✅ दस्तावेज़ सफलतापूर्वक सत्यापित!\n\n💰 वेतन: ₹{.salary}\n✨ स्थिति: सत्यापित\n\nक्रेडिट जांच की ओर बढ़ रहे हैं...",
	KeyConfirmReprompt:  "क्रेडिट जांच के लिए तैयार होने पर \"हाँ, आगे बढ़ें\" लिखें।",
	KeyCheckingCredit:   "🔍 क्रेडिट स्कोर और पात्रता की जांच हो रही है...\n\nइसमें कुछ क्षण लगेंगे।",
	KeyCreditApproved:   "✅ क्रेडिट जांच स्वीकृत!\n\n📊 क्रेडिट स्कोर: {.score}/900\n💳 EMI/आय अनुपात: {.ratio}%\n✨ स्थिति: उत्कृष्ट\n\nक्या मंजूरी पत्र तैयार करें?",
	KeyCreditDeclined:   "❌ क्रेडिट जांच अस्वीकृत\n\nकारण: {.reason}\n\nसहायता के लिए कृपया सपोर्ट से संपर्क करें।",
	KeyGeneratingLetter: "📄 मंजूरी पत्र तैयार हो रहा है...\n\nकृपया प्रतीक्षा करें।",
	KeySanctioned:       "🎊 बधाई हो {.name}!\n\n✅ आपका लोन मंजूर हो गया है!\n\n📋 संदर्भ संख्या: {.reference}\n💰 राशि: ₹{.amount}\n📅 अवधि: {.tenure} महीने\n💳 मासिक EMI: ₹{.emi}\n📊 कुल भुगतान: ₹{.total}\n\n⏱️ 24 घंटे के भीतर राशि वितरित की जाएगी!\n\nटाटा कैपिटल चुनने के लिए धन्यवाद! 🎉",
	KeyFallback:         "कृपया नीचे दिए गए सुझावों में से चुनें।",
	KeyTryLater:         "⚠️ अभी हम रिकॉर्ड तक नहीं पहुंच पाए। कृपया थोड़ी देर में पुनः प्रयास करें।",
	KeyFileEmpty:        "अपलोड की गई फ़ाइल खाली है। कृपया अपनी वेतन पर्ची फिर से चुनें।",

	KeyRejectionAge:      "आयु प्रतिबंध: {.age} वर्ष (आवश्यक: 21-60)",
	KeyRejectionSalary:   "मासिक वेतन ₹15,000 से कम",
	KeyRejectionCredit:   "क्रेडिट स्कोर {.score} 700 से कम है",
	KeyRejectionExcess:   "राशि पूर्व-स्वीकृत सीमा के 2x से अधिक है",
	KeyRejectionEMIRatio: "EMI/आय अनुपात 50% से अधिक है",
	KeyRejectionScore:    "क्रेडिट स्कोर न्यूनतम आवश्यकता से कम है",

	KeyMonths:         "{.months} महीने",
	KeyProceed:        "हाँ, आगे बढ़ें",
	KeyUploadButton:   "दस्तावेज़ अपलोड करें",
	KeyContactSupport: "सहायता से संपर्क करें",
	KeyTryAnother:     "दूसरी राशि आज़माएं",
	KeyGenerateLetter: "मंजूरी पत्र बनाएं",
	KeyDownloadPDF:    "PDF डाउनलोड करें",
	KeyESign:          "ई-हस्ताक्षर करें",

	KeySanctionSubject: "आपका टाटा कैपिटल लोन मंजूर हो गया है ({.reference})",
	KeySanctionNotice:  "प्रिय {.name}, ₹{.amount} का आपका पर्सनल लोन मंजूर हो गया है। संदर्भ {.reference}। {.tenure} महीनों के लिए EMI ₹{.emi}। राशि 24 घंटे के भीतर वितरित की जाएगी।",

	KeyAgentMaster:       "मास्टर एजेंट",
	KeyAgentSales:        "सेल्स एजेंट",
	KeyAgentVerification: "सत्यापन एजेंट",
	KeyAgentUnderwriting: "अंडरराइटिंग एजेंट",
	KeyAgentDocument:     "दस्तावेज़ एजेंट",
	KeyAgentSanction:     "मंजूरी एजेंट",
}
