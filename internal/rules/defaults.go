package rules

// Rule set names.
const (
	HealthcareSet = "healthcare"
	GeneralSet    = "general"
)

// Canned responses shared by several terms.
const (
	respSymptom     = "It seems like you're experiencing symptoms. Please consult a doctor for accurate advice."
	respAppointment = "Would you like me to schedule an appointment with a doctor?"
	respMedication  = "It's important to take your prescribed medications regularly. If you have concerns, consult your doctor."
	respEmergency   = "If this is a medical emergency, please call emergency services immediately."
	respTestResult  = "For accurate interpretation of test results, please consult your healthcare provider."
	respVaccine     = "Vaccinations are crucial for preventing diseases. Please consult your doctor for the right schedule."
	respAllergy     = "If you suspect an allergy, it's important to avoid the allergen and consult an allergist."
	respExercise    = "Regular exercise is vital for maintaining good health. Aim for at least 30 minutes a day."
	respDiet        = "A balanced diet is key to good health. Remember to include a variety of foods in your meals."
	respMental      = "Mental health is just as important as physical health. If you're feeling stressed or anxious, consider reaching out to a mental health professional."
	respBlood       = "Monitoring your blood pressure regularly is important. Please follow your doctor's advice for management."
	respDiabetes    = "Managing diabetes involves monitoring blood sugar levels and following a healthy lifestyle. Please consult your doctor for personalized advice."
	respHeart       = "Heart health is critical. Regular check-ups and a healthy lifestyle are important for prevention and management."
	respCancer      = "Early detection is key in cancer treatment. Regular screenings and consultations with a healthcare provider are crucial."
	respSleep       = "Good sleep hygiene is essential for overall health. If you're having trouble sleeping, consider consulting a doctor."
	respPain        = "If you're experiencing persistent pain, it's important to consult a healthcare professional for proper diagnosis and treatment."
	respHeadache    = "Headaches can have various causes. If you experience frequent or severe headaches, consult a doctor."
	respFever       = "Fever can be a sign of infection. If you have a high or persistent fever, seek medical attention."
	respInfection   = "If you suspect an infection, seek medical advice promptly for proper treatment."

	respGreeting = "Hello! How can I assist you today? 😊"
	respThanks   = "You're welcome! I'm here to help you with any questions or concerns you might have."
	respGoodbye  = "Goodbye! Take care and stay healthy. If you need any assistance, feel free to reach out anytime."
	respName     = "I'm your friendly AI Healthcare Assistant. How can I help you today?"
	respJoke     = "Why did the doctor carry a red pen? In case they needed to draw blood! 😄"
	respHelp     = "I'm here to assist you with any healthcare-related questions or concerns. How can I help?"
	respHowAreU  = "I'm doing well, thank you for asking! How are you feeling today?"
)

var healthcareRules = []Rule{
	{"symptom", respSymptom},
	{"appointment", respAppointment},
	{"medication", respMedication},
	{"emergency", respEmergency},
	{"urgent", respEmergency},
	{"test result", respTestResult},
	{"report", respTestResult},
	{"vaccine", respVaccine},
	{"vaccination", respVaccine},
	{"allergy", respAllergy},
	{"exercise", respExercise},
	{"fitness", respExercise},
	{"diet", respDiet},
	{"nutrition", respDiet},
	{"mental health", respMental},
	{"stress", respMental},
	{"anxiety", respMental},
	{"blood pressure", respBlood},
	{"hypertension", respBlood},
	{"diabetes", respDiabetes},
	{"heart disease", respHeart},
	{"cancer", respCancer},
	{"sleep", respSleep},
	{"insomnia", respSleep},
	{"pain", respPain},
	{"ache", respPain},
	{"headache", respHeadache},
	{"migraine", respHeadache},
	{"fever", respFever},
	{"infection", respInfection},
}

var generalRules = []Rule{
	{"hi", respGreeting},
	{"hello", respGreeting},
	{"thank you", respThanks},
	{"goodbye", respGoodbye},
	{"name", respName},
	{"joke", respJoke},
	{"funny", respJoke},
	{"help", respHelp},
	{"support", respHelp},
	{"how are you", respHowAreU},
}

// Healthcare returns the built-in healthcare rule set.
func Healthcare() *RuleSet {
	return MustRuleSet(HealthcareSet, healthcareRules)
}

// General returns the built-in conversational rule set.
func General() *RuleSet {
	return MustRuleSet(GeneralSet, generalRules)
}
