package service

import (
	"fmt"
	"strconv"
)

// Prompt text lives here, away from the parsers, so grammar changes in
// one never silently break the other. Every prompt that feeds a parser
// spells out the exact expected output format.

func clarifyPrompt(topic string) string {
	return "I was asked to create a survey about " + topic +
		". Give me 2-4 clarifying questions about the survey content " +
		"(e.g. things to ask, clarify subject, etc) that I can ask the requestor."
}

func ideateMCPrompt(topic, info string) string {
	return "Create a 5-question survey about " + topic +
		" using the following clarifying information: " + info +
		" Return only the survey questions in your response, all of which should be " +
		"multiple choice with letter options (do not use the all-of-the-above answer " +
		"choice). Your response will be fed directly into a program."
}

func ideateLikertPrompt(topic, info string) string {
	return "Come up with 5 statements about " + topic +
		" for a Likert-scale grid survey using the following clarifying information: " + info +
		" Return only the statements in your response. Your response will be fed " +
		"directly into a program."
}

// likertScaleBanner is prepended to every Likert draft shown to the user.
const likertScaleBanner = "The possible responses for each statement are: " +
	"Strongly Disagree, Disagree, Neutral, Agree, Strongly Agree.\n"

func revisePrompt(survey, instruction string) string {
	return "Here's a survey: " + survey +
		"\nMake the following revisions (but keep the survey multiple-choice with " +
		"letter options). Return only the survey questions in your response as it " +
		"will be fed directly into a program: " + instruction
}

func normalizeMCPrompt(survey string) string {
	return "Without making content changes, adapt the following survey to the " +
		"following format (all features of the survey, including questions, are " +
		"separated by pipe characters) of this example 3-question survey: " +
		"'1|age|How old are you?|Under 18, 18-24, 25-34 | " +
		"2|favorite_fruit|Which of the following is your favorite fruit?|Apple, Banana, Orange, Strawberry | " +
		"3|transportation_mode|What is your primary mode of transportation?|Car, Bus, Train, Bike, Walk. |' " +
		"The output will be structured to feed into a computer program, so do not " +
		"add any additional text. Here's the survey: " + survey
}

func normalizeLikertPrompt(survey string) string {
	return "Without making content changes, adapt the following list of statements " +
		"to the following format, including quotations and separated by commas: " +
		`"I feel valued at work", "I have the resources I need", "My workload is manageable" ` +
		survey
}

func charactersPrompt(survey, topic string, n int) string {
	return "Copied below is a survey on " + topic + ". Come up with " + strconv.Itoa(n) +
		" characters to take the survey. For now, for each character, give a quick " +
		"description, including their name, age, nation of origin, demographic " +
		"information. Respond only with the character list as your response will " +
		"feed into text output. " + survey
}

func reviseCharactersPrompt(characters, topic, feedback string) string {
	return "Copied below is a list of made-up respondent profiles for a survey about " +
		topic + "\n" + characters +
		"\nRevise the list of profiles based on the following feedback. Respond only " +
		"with the character list as your response will feed into text output: " + feedback
}

func simulateOnePrompt(survey, topic string) string {
	return "Pretend you are about to take this survey on " + topic +
		". Give us a brief description about yourself and then give your responses " +
		"to the following survey: " + survey
}

func simulateBatchPrompt(survey, topic, characters string) string {
	return "Here is a survey about " + topic + "\n" + survey +
		"\nBelow, I have a list of characters that are to respond to the survey. " +
		"For each character in the list, give the multiple-choice response AND a " +
		"corresponding letter choice for each survey question, formatted nicely in " +
		"a MD file. Only respond with the MD so that the response can be " +
		"immediately used: " + characters
}

func extractSurveyPrompt(survey string) string {
	return "Here is a survey: " + survey +
		"\nRespond only with text that can be fed into a function, representing the " +
		"survey using the following format: " +
		"1 Insert First Question Text; a. Option 1; b. Option 2; c. Option 3 | " +
		"2 Insert Second Question Text; a. Option 1; b. Option 2; c. Option 3 |"
}

func extractResponsesPrompt(batch string) string {
	return fmt.Sprintf("Here are the results of survey: %s"+
		"\nRespond only with text that can be fed into a function, representing each "+
		"respondent's answers in the following format: "+
		"a,b,b,c,b | b,a,a,a,c | c,b,a,d,a |", batch)
}
