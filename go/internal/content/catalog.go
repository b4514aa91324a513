package content

import (
	"time"

	"github.com/mcdev12/zodiarena/go/internal/models"
)

// bd builds a birthdate at midnight UTC. Subjects carry no time component.
func bd(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func subject(name string, birthdate time.Time, category models.Category, achievements ...string) models.Subject {
	return models.Subject{
		Name:         name,
		Birthdate:    birthdate,
		Achievements: achievements,
		Category:     category,
	}
}

// DefaultCatalog returns the built-in subject catalog, keyed by category.
// The data is author-controlled: birthdates are verified, so classifier
// fallbacks never trigger for catalog subjects.
func DefaultCatalog() map[models.Category][]models.Subject {
	return map[models.Category][]models.Subject{
		models.CategoryActors: {
			subject("Leonardo DiCaprio", bd(1974, time.November, 11), models.CategoryActors,
				"Academy Award winner for The Revenant", "Starred in Titanic and Inception"),
			subject("Tom Hanks", bd(1956, time.July, 9), models.CategoryActors,
				"Back-to-back Oscars for Philadelphia and Forrest Gump", "Voice of Woody in Toy Story"),
			subject("Meryl Streep", bd(1949, time.June, 22), models.CategoryActors,
				"Record 21 Academy Award nominations", "Three-time Oscar winner"),
			subject("Denzel Washington", bd(1954, time.December, 28), models.CategoryActors,
				"Oscar winner for Glory and Training Day", "Directed and starred in Fences"),
			subject("Scarlett Johansson", bd(1984, time.November, 22), models.CategoryActors,
				"Black Widow in the Marvel Cinematic Universe", "Two Oscar nominations in the same year"),
			subject("Brad Pitt", bd(1963, time.December, 18), models.CategoryActors,
				"Oscar winner for Once Upon a Time in Hollywood", "Starred in Fight Club and Se7en"),
			subject("Natalie Portman", bd(1981, time.June, 9), models.CategoryActors,
				"Academy Award winner for Black Swan", "Harvard psychology graduate"),
			subject("Morgan Freeman", bd(1937, time.June, 1), models.CategoryActors,
				"Oscar winner for Million Dollar Baby", "Narrated March of the Penguins"),
		},
		models.CategorySingers: {
			subject("Taylor Swift", bd(1989, time.December, 13), models.CategorySingers,
				"Most Album of the Year Grammy wins in history", "Re-recorded her first six albums"),
			subject("Beyonce", bd(1981, time.September, 4), models.CategorySingers,
				"Most Grammy wins of any artist", "Former lead singer of Destiny's Child"),
			subject("Adele", bd(1988, time.May, 5), models.CategorySingers,
				"Albums titled after her age", "Sang the Skyfall Bond theme"),
			subject("Ed Sheeran", bd(1991, time.February, 17), models.CategorySingers,
				"Wrote Shape of You", "Mathematical symbols as album titles"),
			subject("Freddie Mercury", bd(1946, time.September, 5), models.CategorySingers,
				"Legendary frontman of Queen", "Wrote Bohemian Rhapsody"),
			subject("Michael Jackson", bd(1958, time.August, 29), models.CategorySingers,
				"King of Pop", "Thriller is the best-selling album of all time"),
			subject("Rihanna", bd(1988, time.February, 20), models.CategorySingers,
				"Nine-time Grammy winner", "Founded the Fenty Beauty brand"),
			subject("Bruno Mars", bd(1985, time.October, 8), models.CategorySingers,
				"24K Magic and Uptown Funk", "Multiple Super Bowl halftime shows"),
		},
		models.CategoryFootballers: {
			subject("Lionel Messi", bd(1987, time.June, 24), models.CategoryFootballers,
				"Eight Ballon d'Or awards", "2022 World Cup champion with Argentina"),
			subject("Cristiano Ronaldo", bd(1985, time.February, 5), models.CategoryFootballers,
				"Five Champions League titles", "All-time leading international goalscorer"),
			subject("Neymar", bd(1992, time.February, 5), models.CategoryFootballers,
				"Brazil's all-time top scorer", "World-record transfer to PSG"),
			subject("Kylian Mbappe", bd(1998, time.December, 20), models.CategoryFootballers,
				"World Cup winner as a teenager", "Hat-trick in the 2022 World Cup final"),
			subject("Zinedine Zidane", bd(1972, time.June, 23), models.CategoryFootballers,
				"1998 World Cup winner with France", "Won three straight Champions Leagues as a manager"),
			subject("Ronaldinho", bd(1980, time.March, 21), models.CategoryFootballers,
				"2005 Ballon d'Or winner", "Applauded by Real Madrid fans at the Bernabeu"),
			subject("Mohamed Salah", bd(1992, time.June, 15), models.CategoryFootballers,
				"Premier League Golden Boot winner", "Champions League winner with Liverpool"),
			subject("David Beckham", bd(1975, time.May, 2), models.CategoryFootballers,
				"Famous for trademark free kicks", "Captained England 59 times"),
		},
		models.CategoryBasketball: {
			subject("LeBron James", bd(1984, time.December, 30), models.CategoryBasketball,
				"NBA all-time leading scorer", "Four championships with three franchises"),
			subject("Michael Jordan", bd(1963, time.February, 17), models.CategoryBasketball,
				"Six NBA titles with the Chicago Bulls", "Five-time league MVP"),
			subject("Kobe Bryant", bd(1978, time.August, 23), models.CategoryBasketball,
				"Five championships with the Lakers", "Scored 81 points in a single game"),
			subject("Stephen Curry", bd(1988, time.March, 14), models.CategoryBasketball,
				"Greatest shooter in NBA history", "First unanimous league MVP"),
			subject("Shaquille O'Neal", bd(1972, time.March, 6), models.CategoryBasketball,
				"Three-peat champion with the Lakers", "Most dominant center of his era"),
			subject("Kevin Durant", bd(1988, time.September, 29), models.CategoryBasketball,
				"Two Finals MVP awards", "Four scoring titles"),
			subject("Giannis Antetokounmpo", bd(1994, time.December, 6), models.CategoryBasketball,
				"The Greek Freak", "50-point closeout game in the 2021 Finals"),
			subject("Magic Johnson", bd(1959, time.August, 14), models.CategoryBasketball,
				"Showtime Lakers point guard", "Finals MVP as a rookie"),
		},
		models.CategoryWWE: {
			subject("Dwayne Johnson", bd(1972, time.May, 2), models.CategoryWWE,
				"The Rock, the People's Champion", "Crossed over to Hollywood stardom"),
			subject("John Cena", bd(1977, time.April, 23), models.CategoryWWE,
				"Record-tying 16 world championships", "Most Make-A-Wish wishes granted"),
			subject("The Undertaker", bd(1965, time.March, 24), models.CategoryWWE,
				"21-0 WrestleMania streak", "The Deadman of WWE for three decades"),
			subject("Steve Austin", bd(1964, time.December, 18), models.CategoryWWE,
				"Stone Cold, face of the Attitude Era", "Famous glass-shatter entrance"),
			subject("Triple H", bd(1969, time.July, 27), models.CategoryWWE,
				"14-time world champion", "The Game, founder of D-Generation X"),
			subject("Hulk Hogan", bd(1953, time.August, 11), models.CategoryWWE,
				"Face of 1980s Hulkamania", "Headlined the first WrestleMania"),
			subject("Randy Orton", bd(1980, time.April, 1), models.CategoryWWE,
				"Youngest world champion in WWE history", "The Viper, master of the RKO"),
			subject("Rey Mysterio", bd(1974, time.December, 11), models.CategoryWWE,
				"Greatest luchador in WWE history", "Won the 2006 Royal Rumble"),
		},
		models.CategoryUFC: {
			subject("Conor McGregor", bd(1988, time.July, 14), models.CategoryUFC,
				"First simultaneous two-division UFC champion", "13-second knockout of Jose Aldo"),
			subject("Khabib Nurmagomedov", bd(1988, time.September, 20), models.CategoryUFC,
				"Retired undefeated at 29-0", "Dominant lightweight champion"),
			subject("Jon Jones", bd(1987, time.July, 19), models.CategoryUFC,
				"Youngest UFC champion ever", "Light heavyweight and heavyweight titles"),
			subject("Israel Adesanya", bd(1989, time.July, 22), models.CategoryUFC,
				"The Last Stylebender", "Former middleweight champion and kickboxing star"),
			subject("Ronda Rousey", bd(1987, time.February, 1), models.CategoryUFC,
				"First UFC women's champion", "Olympic judo medalist"),
			subject("Anderson Silva", bd(1975, time.April, 14), models.CategoryUFC,
				"Longest title reign in UFC history", "16-fight UFC win streak"),
			subject("Georges St-Pierre", bd(1981, time.May, 19), models.CategoryUFC,
				"Two-division champion", "Widely ranked among the greatest welterweights"),
			subject("Amanda Nunes", bd(1988, time.May, 30), models.CategoryUFC,
				"The Lioness, two-division champion", "Beat Rousey in 48 seconds"),
		},
		models.CategoryKDrama: {
			subject("Lee Min-ho", bd(1987, time.June, 22), models.CategoryKDrama,
				"Starred in Boys Over Flowers", "Lead in The King: Eternal Monarch"),
			subject("Song Hye-kyo", bd(1981, time.November, 22), models.CategoryKDrama,
				"Starred in Descendants of the Sun", "Lead in The Glory"),
			subject("Hyun Bin", bd(1982, time.September, 25), models.CategoryKDrama,
				"Captain Ri in Crash Landing on You", "Starred in Secret Garden"),
			subject("Son Ye-jin", bd(1982, time.January, 11), models.CategoryKDrama,
				"Lead in Crash Landing on You", "Starred in Something in the Rain"),
			subject("Park Seo-joon", bd(1988, time.December, 16), models.CategoryKDrama,
				"Lead in Itaewon Class", "Starred in What's Wrong with Secretary Kim"),
			subject("IU", bd(1993, time.May, 16), models.CategoryKDrama,
				"Starred in Hotel del Luna", "Chart-topping singer-songwriter"),
			subject("Gong Yoo", bd(1979, time.July, 10), models.CategoryKDrama,
				"Lead in Goblin", "The recruiter in Squid Game"),
			subject("Bae Suzy", bd(1994, time.October, 10), models.CategoryKDrama,
				"Lead in Start-Up", "Former member of Miss A"),
		},
	}
}
