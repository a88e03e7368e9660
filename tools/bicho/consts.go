package bicho

// animals lists the 25 groups of the Jogo do Bicho table in order.
// Group n is animals[n-1]. Each group covers four dezenas: 4n-3 up to 4n,
// with dezena 00 counted as 100 so it lands in group 25 (Vaca).
var animals = [MaxGroup]string{
	"Avestruz",
	"Águia",
	"Burro",
	"Borboleta",
	"Cachorro",
	"Cabra",
	"Carneiro",
	"Camelo",
	"Cobra",
	"Coelho",
	"Cavalo",
	"Elefante",
	"Galo",
	"Gato",
	"Jacaré",
	"Leão",
	"Macaco",
	"Porco",
	"Pavão",
	"Peru",
	"Touro",
	"Tigre",
	"Urso",
	"Veado",
	"Vaca",
}

// MaxGroup is the number of groups in the table.
const MaxGroup = 25
