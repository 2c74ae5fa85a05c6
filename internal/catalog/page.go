package catalog

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactInfo struct {
	Brand   string `json:"brand"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

var features = []Feature{
	{Icon: "Award", Title: "Опыт 15+ лет", Description: "Работаем с МКПП всех марок автомобилей"},
	{Icon: "Clock", Title: "Быстрый сервис", Description: "Стандартный ремонт за 2-3 дня"},
	{Icon: "CheckCircle", Title: "Гарантия 12 месяцев", Description: "На все виды работ и запчасти"},
	{Icon: "Sparkles", Title: "Оригинальные запчасти", Description: "Сертифицированные комплектующие"},
}

var contacts = ContactInfo{
	Brand:   "МКПП Сервис",
	Phone:   "+7 (495) 123-45-67",
	Email:   "info@mkpp-service.ru",
	Address: "г. Москва, ул. Автомобильная, д. 10",
	Hours:   "Работаем ежедневно с 9:00 до 20:00",
}

func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

func Contacts() ContactInfo {
	return contacts
}
