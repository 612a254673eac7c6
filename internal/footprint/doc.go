// Package footprint holds the carbon footprint questionnaire: the questions,
// answer parsing and the scoring formula.
package footprint

// About describes the application. Front-ends print it verbatim.
const About = "This application helps you estimate your carbon footprint.\n" +
	"You can take the questionnaire multiple times and see how much you've improved over time."
