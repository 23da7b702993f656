package catalog

// DefaultShelves is the built-in catalog. Fixed at startup; the bot has no
// runtime catalog editing.
var DefaultShelves = []Shelf{
	{
		Genre: "Fantasy",
		Books: []Book{
			{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien"},
			{Title: "A Game of Thrones", Author: "George R.R. Martin"},
			{Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling"},
			{Title: "The Name of the Wind", Author: "Patrick Rothfuss"},
			{Title: "Mistborn: The Final Empire", Author: "Brandon Sanderson"},
			{Title: "The Hobbit", Author: "J.R.R. Tolkien"},
			{Title: "The Way of Kings", Author: "Brandon Sanderson"},
			{Title: "Assassin's Apprentice", Author: "Robin Hobb"},
		},
	},
	{
		Genre: "Sci-Fi",
		Books: []Book{
			{Title: "Dune", Author: "Frank Herbert"},
			{Title: "Ender's Game", Author: "Orson Scott Card"},
			{Title: "Foundation", Author: "Isaac Asimov"},
			{Title: "Neuromancer", Author: "William Gibson"},
			{Title: "Hyperion", Author: "Dan Simmons"},
			{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin"},
			{Title: "Snow Crash", Author: "Neal Stephenson"},
			{Title: "The Martian", Author: "Andy Weir"},
		},
	},
	{
		Genre: "Mystery",
		Books: []Book{
			{Title: "The Girl with the Dragon Tattoo", Author: "Stieg Larsson"},
			{Title: "Gone Girl", Author: "Gillian Flynn"},
			{Title: "The Big Sleep", Author: "Raymond Chandler"},
			{Title: "And Then There Were None", Author: "Agatha Christie"},
			{Title: "In the Woods", Author: "Tana French"},
			{Title: "The Hound of the Baskervilles", Author: "Arthur Conan Doyle"},
		},
	},
	{
		Genre: "Romance",
		Books: []Book{
			{Title: "Pride and Prejudice", Author: "Jane Austen"},
			{Title: "Outlander", Author: "Diana Gabaldon"},
			{Title: "The Notebook", Author: "Nicholas Sparks"},
			{Title: "Jane Eyre", Author: "Charlotte Bronte"},
			{Title: "Beach Read", Author: "Emily Henry"},
		},
	},
	{
		Genre: "Horror",
		Books: []Book{
			{Title: "The Shining", Author: "Stephen King"},
			{Title: "Dracula", Author: "Bram Stoker"},
			{Title: "House of Leaves", Author: "Mark Z. Danielewski"},
			{Title: "Bird Box", Author: "Josh Malerman"},
			{Title: "Pet Sematary", Author: "Stephen King"},
		},
	},
	{
		Genre: "Non-Fiction",
		Books: []Book{
			{Title: "Sapiens", Author: "Yuval Noah Harari"},
			{Title: "Educated", Author: "Tara Westover"},
			{Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman"},
			{Title: "The Immortal Life of Henrietta Lacks", Author: "Rebecca Skloot"},
			{Title: "A Short History of Nearly Everything", Author: "Bill Bryson"},
		},
	},
}
