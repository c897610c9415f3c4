package resource

import "github.com/crorepati-games/crorepati/internal/crorepati/questions"

// SampleQuestions is the built-in bank: ten tiers of four questions each,
// money values ascending from 100 to 20,000,000.
var SampleQuestions = []questions.Question{
	// 100, 30 seconds
	{
		ID:                 "q1",
		Text:               "What is the highest mountain in the world?",
		Options:            []string{"K2", "Mount Everest", "Kilimanjaro", "Denali"},
		CorrectAnswerIndex: 1,
		MoneyValue:         100,
		TimeLimit:          30,
	},
	{
		ID:                 "q2",
		Text:               "What is the largest ocean on Earth?",
		Options:            []string{"Atlantic", "Arctic", "Indian", "Pacific"},
		CorrectAnswerIndex: 3,
		MoneyValue:         100,
		TimeLimit:          30,
	},
	{
		ID:                 "q3",
		Text:               "Who painted the Mona Lisa?",
		Options:            []string{"Van Gogh", "Leonardo da Vinci", "Picasso", "Michelangelo"},
		CorrectAnswerIndex: 1,
		MoneyValue:         100,
		TimeLimit:          30,
	},
	{
		ID:                 "q4",
		Text:               "What is the longest river in the world?",
		Options:            []string{"Amazon", "Mississippi", "Yangtze", "Nile"},
		CorrectAnswerIndex: 3,
		MoneyValue:         100,
		TimeLimit:          30,
	},

	// 1,000, 30 seconds
	{
		ID:                 "q5",
		Text:               "Where is the 2nd highest mountain, K2, located?",
		Options:            []string{"India", "Pakistan", "China", "Nepal"},
		CorrectAnswerIndex: 1,
		MoneyValue:         1000,
		TimeLimit:          30,
	},
	{
		ID:                 "q6",
		Text:               "Who was the first woman to fly solo across the Atlantic?",
		Options:            []string{"Bessie Coleman", "Amelia Earhart", "Harriet Quimby", "Sally Ride"},
		CorrectAnswerIndex: 1,
		MoneyValue:         1000,
		TimeLimit:          30,
	},
	{
		ID:                 "q7",
		Text:               "What is the name of the first North American pope elected in May 2025?",
		Options:            []string{"John Paul III", "Thomas O'Malley", "Robert Francis Prevost", "William Benedict"},
		CorrectAnswerIndex: 2,
		MoneyValue:         1000,
		TimeLimit:          30,
	},
	{
		ID:                 "q8",
		Text:               "Who has won the most Olympic medals?",
		Options:            []string{"Usain Bolt", "Michael Phelps", "Simone Biles", "Mark Spitz"},
		CorrectAnswerIndex: 1,
		MoneyValue:         1000,
		TimeLimit:          30,
	},

	// 10,000, 30 seconds
	{
		ID:                 "q9",
		Text:               "What is Donald Trump's middle name?",
		Options:            []string{"James", "Joseph", "John", "Jason"},
		CorrectAnswerIndex: 2,
		MoneyValue:         10000,
		TimeLimit:          30,
	},
	{
		ID:                 "q10",
		Text:               "Which NFL team has the most Super Bowl wins?",
		Options:            []string{"Dallas Cowboys", "New York Giants", "New England Patriots", "Denver Broncos"},
		CorrectAnswerIndex: 2,
		MoneyValue:         10000,
		TimeLimit:          30,
	},
	{
		ID:                 "q11",
		Text:               "Who scored the most points in a single NBA game?",
		Options:            []string{"Kobe Bryant", "Michael Jordan", "Wilt Chamberlain", "LeBron James"},
		CorrectAnswerIndex: 2,
		MoneyValue:         10000,
		TimeLimit:          30,
	},
	{
		ID:                 "q12",
		Text:               "What is the capital of the United States?",
		Options:            []string{"Los Angeles", "New York", "Washington, D.C.", "Chicago"},
		CorrectAnswerIndex: 2,
		MoneyValue:         10000,
		TimeLimit:          30,
	},

	// 75,000, 25 seconds
	{
		ID:                 "q13",
		Text:               "What is the heaviest overall human organ?",
		Options:            []string{"Liver", "Skin", "Brain", "Lungs"},
		CorrectAnswerIndex: 1,
		MoneyValue:         75000,
		TimeLimit:          25,
	},
	{
		ID:                 "q14",
		Text:               "Where was hummus first made?",
		Options:            []string{"Israel", "Syria", "Greece", "Lebanon"},
		CorrectAnswerIndex: 3,
		MoneyValue:         75000,
		TimeLimit:          25,
	},
	{
		ID:                 "q15",
		Text:               "What is the heaviest internal organ?",
		Options:            []string{"Liver", "Kidney", "Intestines", "Heart"},
		CorrectAnswerIndex: 0,
		MoneyValue:         75000,
		TimeLimit:          25,
	},
	{
		ID:                 "q16",
		Text:               "Which planet is known as the Red Planet?",
		Options:            []string{"Venus", "Jupiter", "Mars", "Saturn"},
		CorrectAnswerIndex: 2,
		MoneyValue:         75000,
		TimeLimit:          25,
	},

	// 200,000, 25 seconds
	{
		ID:                 "q17",
		Text:               "Where were the first Olympic games held?",
		Options:            []string{"Italy", "Greece", "Egypt", "Turkey"},
		CorrectAnswerIndex: 1,
		MoneyValue:         200000,
		TimeLimit:          25,
	},
	{
		ID:                 "q18",
		Text:               "What country first made Manchurian chicken/vegetables?",
		Options:            []string{"China", "Thailand", "India", "Malaysia"},
		CorrectAnswerIndex: 2,
		MoneyValue:         200000,
		TimeLimit:          25,
	},
	{
		ID:                 "q19",
		Text:               "Who is the only athlete to play in both a Super Bowl and a World Series?",
		Options:            []string{"Bo Jackson", "Deion Sanders", "Tim Tebow", "Michael Jordan"},
		CorrectAnswerIndex: 1,
		MoneyValue:         200000,
		TimeLimit:          25,
	},
	{
		ID:                 "q20",
		Text:               "What gas do plants use for photosynthesis?",
		Options:            []string{"Oxygen", "Nitrogen", "Hydrogen", "Carbon dioxide"},
		CorrectAnswerIndex: 3,
		MoneyValue:         200000,
		TimeLimit:          25,
	},

	// 500,000, 25 seconds
	{
		ID:                 "q21",
		Text:               "What fruit is the Cutie brand known for?",
		Options:            []string{"Apricot", "Clementine", "Plum", "Kumquat"},
		CorrectAnswerIndex: 1,
		MoneyValue:         500000,
		TimeLimit:          25,
	},
	{
		ID:                 "q22",
		Text:               "Where was the croissant invented?",
		Options:            []string{"France", "Austria", "Germany", "Italy"},
		CorrectAnswerIndex: 1,
		MoneyValue:         500000,
		TimeLimit:          25,
	},
	{
		ID:                 "q23",
		Text:               "Who won the FIFA World Cup in 2022?",
		Options:            []string{"France", "Brazil", "Argentina", "Germany"},
		CorrectAnswerIndex: 2,
		MoneyValue:         500000,
		TimeLimit:          25,
	},
	{
		ID:                 "q24",
		Text:               "What is the chemical symbol for gold?",
		Options:            []string{"Au", "Ag", "Gd", "Go"},
		CorrectAnswerIndex: 0,
		MoneyValue:         500000,
		TimeLimit:          25,
	},

	// 1,250,000, 20 seconds
	{
		ID:                 "q25",
		Text:               "What country is Kadhi Khawsa from?",
		Options:            []string{"Bangladesh", "Burma", "India", "Pakistan"},
		CorrectAnswerIndex: 1,
		MoneyValue:         1250000,
		TimeLimit:          20,
	},
	{
		ID:                 "q26",
		Text:               "Where was the first hamburger made?",
		Options:            []string{"Germany", "USA", "Belgium", "Canada"},
		CorrectAnswerIndex: 2,
		MoneyValue:         1250000,
		TimeLimit:          20,
	},
	{
		ID:                 "q27",
		Text:               "What country did falooda come from?",
		Options:            []string{"Pakistan", "Turkey", "Iran", "Egypt"},
		CorrectAnswerIndex: 2,
		MoneyValue:         1250000,
		TimeLimit:          20,
	},
	{
		ID:                 "q28",
		Text:               "Where were diamonds first cultivated?",
		Options:            []string{"South Africa", "India", "Russia", "Brazil"},
		CorrectAnswerIndex: 1,
		MoneyValue:         1250000,
		TimeLimit:          20,
	},

	// 3,000,000, 20 seconds
	{
		ID:                 "q29",
		Text:               "What year did cricket begin in India?",
		Options:            []string{"1857", "1801", "1721", "1790"},
		CorrectAnswerIndex: 2,
		MoneyValue:         3000000,
		TimeLimit:          20,
	},
	{
		ID:                 "q30",
		Text:               "When were the first jeans made?",
		Options:            []string{"1900s", "1870s", "1800s", "1860s"},
		CorrectAnswerIndex: 1,
		MoneyValue:         3000000,
		TimeLimit:          20,
	},
	{
		ID:                 "q31",
		Text:               "Who discovered penicillin?",
		Options:            []string{"Albert Einstein", "Marie Curie", "Alexander Fleming", "Jonas Salk"},
		CorrectAnswerIndex: 2,
		MoneyValue:         3000000,
		TimeLimit:          20,
	},
	{
		ID:                 "q32",
		Text:               "What is the currency of Japan?",
		Options:            []string{"Yen", "Won", "Yuan", "Ringgit"},
		CorrectAnswerIndex: 0,
		MoneyValue:         3000000,
		TimeLimit:          20,
	},

	// 7,500,000, 15 seconds
	{
		ID:                 "q33",
		Text:               "What is the only U.S. state to grow coffee commercially?",
		Options:            []string{"California", "Texas", "Florida", "Hawaii"},
		CorrectAnswerIndex: 3,
		MoneyValue:         7500000,
		TimeLimit:          15,
	},
	{
		ID:                 "q34",
		Text:               "What is the smallest country in the world?",
		Options:            []string{"Monaco", "San Marino", "Vatican City", "Liechtenstein"},
		CorrectAnswerIndex: 2,
		MoneyValue:         7500000,
		TimeLimit:          15,
	},
	{
		ID:                 "q35",
		Text:               "Which African country has the most pyramids?",
		Options:            []string{"Egypt", "Sudan", "Ethiopia", "Libya"},
		CorrectAnswerIndex: 1,
		MoneyValue:         7500000,
		TimeLimit:          15,
	},
	{
		ID:                 "q36",
		Text:               "What is the deepest part of the ocean?",
		Options:            []string{"Mariana Trench", "Challenger Deep", "Tonga Trench", "Java Trench"},
		CorrectAnswerIndex: 0,
		MoneyValue:         7500000,
		TimeLimit:          15,
	},

	// 20,000,000, 15 seconds
	{
		ID:                 "q37",
		Text:               "Who developed the first programmable computer?",
		Options:            []string{"Alan Turing", "Charles Babbage", "Konrad Zuse", "Bill Gates"},
		CorrectAnswerIndex: 2,
		MoneyValue:         20000000,
		TimeLimit:          15,
	},
	{
		ID:                 "q38",
		Text:               "What is the rarest blood type?",
		Options:            []string{"AB+", "B-", "AB-", "O-"},
		CorrectAnswerIndex: 2,
		MoneyValue:         20000000,
		TimeLimit:          15,
	},
	{
		ID:                 "q39",
		Text:               "Which element has the highest melting point?",
		Options:            []string{"Iron", "Tungsten", "Titanium", "Uranium"},
		CorrectAnswerIndex: 1,
		MoneyValue:         20000000,
		TimeLimit:          15,
	},
	{
		ID:                 "q40",
		Text:               "Which galaxy is closest to the Milky Way?",
		Options:            []string{"Triangulum", "Messier 87", "Andromeda", "Large Magellanic Cloud"},
		CorrectAnswerIndex: 2,
		MoneyValue:         20000000,
		TimeLimit:          15,
	},
}
