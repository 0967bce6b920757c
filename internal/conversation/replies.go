package conversation

// Attachment is a named file delivered alongside a reply.
type Attachment struct {
	Name string
	Data []byte
}

// Reply is one outbound chat message, optionally carrying a single file.
type Reply struct {
	Text string
	File *Attachment
}

func text(s string) Reply { return Reply{Text: s} }

func file(text, name string, data []byte) Reply {
	return Reply{Text: text, File: &Attachment{Name: name, Data: data}}
}

// Canned reply wording.
const (
	replyHello   = "General Kenobi"
	replyThanks  = "You're welcome, human."
	replyUnknown = "I'm sorry, I'm not sure how to do that."
	replyHelp    = "I'm AutoScience, a bot that automates survey creation.\nHere's a full list of my abilities…"

	replyFinalMenu = "\nI can now...\n" +
		"- Send the raw survey file (as MD or QSF)\n" +
		"- Upload to your Qualtrics account\n" +
		"- Simulate survey responses."

	replyAskMoreChanges  = "Would you like any more changes? If not, reply 'ok'."
	replyAskTweaks       = "Need tweaks? If not, reply 'ok'."
	replyAskCharacters   = "Would you like to edit the character list? If not, reply 'ok'."
	replyAskCharsFurther = "Further changes? If not, reply 'ok'."

	replySimulating     = "One moment, generating survey response(s)..."
	replySimulatingOne  = "Generating a character to simulate one survey response..."
	replySimOK          = "Great. Simulating responses now..."
	replyRevisedChars   = "Here is the revised character list."
	replyUploading      = "Uploading your most recently-created survey to Qualtrics..."
	replyUploadFailed   = "There was an error importing into Qualtrics."
	replyQSFNotFound    = "Oops! I couldn't find the QSF file."
	replyMDNotFound     = "Oops! I couldn't find the MD file."
	replyReportNotFound = "Oops! I haven't simulated any surveys."

	formatQuestion = "\nAdditionally, would you like the survey format to be " +
		"(1) multiple choice or (2) likert-scale grid?"
)
