package service

// DefaultSeedWords is the built-in Russian dictionary used to bootstrap the
// global word table. New users get the first 111 dictionary entries as their
// starting personal list.
var DefaultSeedWords = []string{
	"абрикос", "аппарат", "астра", "аквариум", "барсук", "банан", "баран", "борщ", "варенье", "виноград", "весна",
	"витамин", "гриб", "горох", "гантель", "газета", "дуб", "деньги", "доктор", "дождь", "елочка", "ёжик", "единица",
	"еда", "жаба", "желудок", "железо", "жизнь", "завод", "золото", "забор", "змея", "игла", "игра", "игрушка", "изба",
	"костёр", "карандаш", "каша", "комната", "ласточка", "лавка", "леденец", "лось", "матрас", "масло", "маска", "море",
	"носок", "ночь", "нога", "ноутбук", "облако", "очки", "одеяло", "ответ", "перо", "пирог", "палатка", "портфель",
	"радуга", "работа", "рама", "реклама", "санки", "сыр", "снег", "соль", "табурет", "туча", "термос", "тапочки",
	"уголь", "улитка", "утка", "улыбка", "фонтан", "фильм", "футбол", "ферма", "хатка", "хвост", "хлеб", "хвоя",
	"центавр", "церковь", "цыплёнок", "цилиндр", "чайник", "чемодан", "частица", "человек", "шина", "шоколад", "шалаш",
	"шампунь", "щетка", "щука", "щипцы", "щепка", "экран", "электричка", "экономика", "эксперт", "юрта", "ягода", "яд",
	"язычок", "ячмень", "яма", "яблоко", "ящик",
}
