package wellness

import "math/rand"

// Tips shown to stressed clients. Content, not logic.
var Tips = []string{
	"💚 Попробуйте бесплатную медитацию: приложение 'Insight Timer'.",
	"🚶 Прогулка в парке снижает стресс на 25%.",
	"📝 Ведение финансового дневника снижает тревожность на 30%.",
	"☕ Встретьтесь с другом за чашкой чая дома.",
	"🧘 Практика благодарности: записывайте 3 вещи, за которые благодарны.",
}

// Advice returns one random wellness tip.
func Advice() string {
	return Tips[rand.Intn(len(Tips))]
}
