package snapshot

import (
	"fmt"
	"time"
)

// SpacerLabel marks a daily item that only exists to break the layout.
const SpacerLabel = "GAP"

// BilletesSize is the number of cells in the savings grid.
const BilletesSize = 20

var dailyLabels = []string{
	"T1 🦁🦁🦁 20'",
	"Gim 🏋️ 60'",
	"❤️❤️ 20'",
	"Leer 📖 30'",
	"Frío ❄️ 15'",
	"Diana 🎯 15'",
	"IdiomaS 🏛️ 20'",
	"T2 🔥 40'",
	"T3 🚢 20'",
	"pág 📘 30'",
	"WH - m 🫁 15'",
	"🍄🍄 30'",
	"🚂🚂🚂 110'",
	"P ⚙️ 44'",
	"Masajercicio ✋ 20'",
	SpacerLabel,
	"8 ⏰",
	"10.000 🦶 60'",
	"Sol ☀️ 15'",
	"Ayuno 🚫",
	"Menú 🍴 60'",
	"1 FAH 🍰",
	"Sano 🍏",
}

var weeklyLabels = []string{
	"🍄 Agenda 15'",
	"🍄 Bloqueos 5'",
	"🍄 Lavadora(S) 30'",
	"🍄 Foto Cocina y Mesa 15'",
	"🍄 Esteticién 10'",
	"🍄 Web Reino",
	"🍄 Wasap 15'",
	"🍄 Disco 5'",
}

var monthlyLabels = []string{
	"🦁Cuentas 1h", "🦁Compra 30'", "🦁Reino 30'", "🦁Cine 1h", "🦁Libros 15'", "🦁Cartera 15'",
	"🦁Subs 30'", "🦁RRSS 15'", "🦁Arroz 15'", "🦁Medidas 1h", "🦁Destrasteo 2h", "🦁Notas 30'",
	"🦁Papeles 15'", "🦁Escáner 15'", "🦁Digital 30' (llevo 40)", "🦁Silla 5'", "🦁StayFocus 5'",
	"🦁Compranda 30'", "🍏Sauna 1h", "🍏Día sin Pantallas 15'", "🍏Videnda 30h", "🍏Liturgia 30'",
	"❤️Turistáculo 30'", "❤️Bosque 15'", "❤️Viaje 30'", "❤️Anfitrión 15'", "❤️Donanda 30'",
	"❤️S Aristocráticas 15'", "❤️Querida Alicia 2h", "❤️Aliciología 1h", "❤️El Chef 1h",
	"❤️Querida Familia 1h", "❤️Falmuerzo 15'", "📘Reválidas 2h", "📘Dora 30'", "📘Eficiencia 2h",
	"📘Desafío Cuerpo 5'",
}

var annualLabels = []string{
	"🚂Inventarios",
	"🚂Prontuario",
	"🚂Confesiones",
	"🚂Testamento",
	"🚂Álbum",
	"🚂Aspavientos",
	"🚂Illustrator del Reino",
}

var projectLabels = []string{
	"Garci 🎬 1h",
	"Piano 🎹 2x",
	"Trivium 🎓 10p",
	"Disco 📀 1",
	"Itineranda 🌍 1h",
	"Audi 🎧 1h",
	"Latín/Griego 🏛️10p",
	"Gympieza 🧹 1h",
}

// WheelItems are the ids of the nutrition essentials wheel, in order.
var WheelItems = []string{"lemon", "nuts", "dairy", "coffee", "spices", "supplements"}

// BonusKinds are the weekly nutrition bonuses.
var BonusKinds = []string{"organs", "legumes", "fast24"}

// InteractionKinds are the default sub-counters of a person.
var InteractionKinds = []string{"person", "call", "gift", "photo", "message"}

func itemsFrom(prefix string, labels []string) []CycleItem {
	items := make([]CycleItem, len(labels))
	for i, label := range labels {
		items[i] = CycleItem{
			ID:     fmt.Sprintf("%s-%d", prefix, i),
			Label:  label,
			Spacer: label == SpacerLabel,
		}
	}
	return items
}

func DefaultDaily() []CycleItem    { return itemsFrom("huno", dailyLabels) }
func DefaultWeekly() []CycleItem   { return itemsFrom("set", weeklyLabels) }
func DefaultMonthly() []CycleItem  { return itemsFrom("train", monthlyLabels) }
func DefaultAnnual() []CycleItem   { return itemsFrom("annual-train", annualLabels) }
func DefaultProjects() []CycleItem { return itemsFrom("new-proj", projectLabels) }

// DefaultWheel returns the six unchecked essentials.
func DefaultWheel() []CycleItem {
	items := make([]CycleItem, len(WheelItems))
	for i, id := range WheelItems {
		items[i] = CycleItem{ID: id, Label: id}
	}
	return items
}

// DefaultBilletes returns an empty savings grid.
func DefaultBilletes() []CycleItem {
	items := make([]CycleItem, BilletesSize)
	for i := range items {
		items[i] = CycleItem{ID: fmt.Sprintf("billete-%d", i), Label: fmt.Sprintf("%d", i+1)}
	}
	return items
}

// DefaultBonuses returns every weekly bonus switched off.
func DefaultBonuses() map[string]bool {
	m := make(map[string]bool, len(BonusKinds))
	for _, k := range BonusKinds {
		m[k] = false
	}
	return m
}

// DefaultInteractions returns a zeroed interaction counter set.
func DefaultInteractions() map[string]int {
	m := make(map[string]int, len(InteractionKinds))
	for _, k := range InteractionKinds {
		m[k] = 0
	}
	return m
}

// DefaultForjas returns the main objective followed by the four quarterly goals.
func DefaultForjas() []Resource {
	return []Resource{
		{ID: "permanent-objective", Name: "Objetivo Principal", Current: 0, Target: 100, Unit: "pts"},
		{ID: "q1-money", Name: "Dinero", Current: 0, Target: 1000, Unit: "€"},
		{ID: "q2-health", Name: "Salud", Current: 0, Target: 10, Unit: "kg"},
		{ID: "q3-love", Name: "Amor", Current: 0, Target: 50, Unit: "pts"},
		{ID: "q4-proj", Name: "Proyectos", Current: 0, Target: 100, Unit: "h"},
	}
}

// Default returns the snapshot of a first run at now. The daily key is set to
// today so the first load does not archive or fail anything.
func Default(now time.Time) Snapshot {
	at := now.UTC()
	return Snapshot{
		LastDailyResetKey: now.Format("2006-01-02"),
		LastWeeklyReset:   at,
		LastMonthlyReset:  at,
		Daily:             DailyCycle{Items: DefaultDaily(), History: map[string][]string{}},
		Weekly:            BoundedCycle{Items: DefaultWeekly(), History: History{}},
		Monthly:           BoundedCycle{Items: DefaultMonthly(), History: History{}},
		Annual:            AnnualCycle{Items: DefaultAnnual()},
		Projects:          DefaultProjects(),
		Billetes:          DefaultBilletes(),
		Stats:             Stats{InteractionHistory: History{}},
		People:            []Person{},
		Food: Food{
			LastWeeklyReset: at,
			Wheel:           DefaultWheel(),
			Bonuses:         DefaultBonuses(),
			Log:             []FoodEntry{},
		},
		Forjas: DefaultForjas(),
		Leones: []Resource{},
	}
}
