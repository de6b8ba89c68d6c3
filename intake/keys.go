package intake

// Stable question keys assigned by the survey tool. The tool generates them
// once when the form is built; they survive re-ordering and relabeling of
// questions, so every extractor addresses its question through one of these.
const (
	keyBirthName = "question_nGRzxz"
	keyLastName  = "question_mO7gDE"
	keyEmail     = "question_wa26Qy"

	keyGender        = "question_3yJQMv"
	keyPronouns      = "question_3X4aLg"
	keyPronounsOther = "question_w8ZKNo"
	keyNickname      = "question_wg94YK"
	keyPhone         = "question_wd9MEo"
	keyParticipated  = "question_mVz8vl"

	keyResponsibilities = "question_wLPr9v"
	keyFunFact          = "question_nPz0v0"
	keyVolunteerInfo    = "question_wz7eGE"
	keyStudentCoach     = "question_mRPXJQ"

	keyEducationLevel      = "question_w4K84o"
	keyEducationLevelOther = "question_3jPd21"
	keyEducationDuration   = "question_w2Kr1b"
	keyEducationYear       = "question_3xJpX9"
	keyEducationInstitute  = "question_mZ2Njv"
	keyEducations          = "question_w4KJk2"
	keyEducationsOther     = "question_3jPdVR"

	keyFluentLanguage      = "question_mK17RN"
	keyFluentLanguageOther = "question_wLPbZ2"
	keyEnglishLevel        = "question_mKVEBd"

	keyAppliedRoles      = "question_mBxBAY"
	keyAppliedRolesOther = "question_wkNydj"

	keyCVLink          = "question_wA5x1V"
	keyCVUpload        = "question_nW5XpA"
	keyPortfolioLink   = "question_npDKbE"
	keyPortfolioUpload = "question_3E0gkr"
	keyMotivationLink  = "question_mJzqM2"
	keyMotivationFile  = "question_wANpnz"
	keyMotivationText  = "question_w7NZ1z"
)
