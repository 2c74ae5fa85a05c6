package catalog

// Service is an offered repair service. Key doubles as the title and is what
// the booking session stores.
type Service struct {
	Key         string `json:"key"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

var services = []Service{
	newService("Wrench", "Ремонт МКПП", "Полная диагностика и ремонт механических коробок передач любой сложности", "от 15 000 ₽"),
	newService("Cog", "Замена сцепления", "Профессиональная замена комплекта сцепления с гарантией качества", "от 8 000 ₽"),
	newService("Settings", "Регулировка МКПП", "Настройка и регулировка механизмов переключения передач", "от 3 000 ₽"),
	newService("Droplet", "Замена масла", "Замена трансмиссионного масла с промывкой системы", "от 2 500 ₽"),
	newService("Shield", "Диагностика", "Комплексная диагностика состояния коробки передач", "от 1 500 ₽"),
	newService("Zap", "Срочный ремонт", "Экспресс-ремонт в течение 24 часов", "от 20 000 ₽"),
}

func newService(icon, title, description, price string) Service {
	return Service{Key: title, Icon: icon, Title: title, Description: description, Price: price}
}

// Services returns the catalog in display order. The slice is a copy.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// LookupService finds a service by key.
func LookupService(key string) (Service, bool) {
	for _, s := range services {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

// ServiceAt returns the service rendered on the card with the given index.
func ServiceAt(index int) (Service, bool) {
	if index < 0 || index >= len(services) {
		return Service{}, false
	}
	return services[index], true
}
