package dreambook

// entry binds a dream symbol to a group of the Jogo do Bicho table.
type entry struct {
	symbol string
	group  int
}

// dreamBook is the dream interpretation table. Symbols are stored normalized
// (lower case, no diacritics); the first entry wins when a dream mentions
// more than one spelling of the same symbol. The table follows the popular
// "livro dos sonhos" associations: each animal matches its own name plus a
// handful of traditional omens.
var dreamBook = []entry{
	{"avestruz", 1},
	{"deserto", 1},
	{"aguia", 2},
	{"voo", 2},
	{"altura", 2},
	{"burro", 3},
	{"teimosia", 3},
	{"carga", 3},
	{"borboleta", 4},
	{"jardim", 4},
	{"flores", 4},
	{"cachorro", 5},
	{"amigo", 5},
	{"latido", 5},
	{"cabra", 6},
	{"montanha", 6},
	{"carneiro", 7},
	{"rebanho", 7},
	{"la", 7},
	{"camelo", 8},
	{"viagem", 8},
	{"areia", 8},
	{"cobra", 9},
	{"veneno", 9},
	{"inveja", 9},
	{"traicao", 9},
	{"coelho", 10},
	{"sorte", 10},
	{"cenoura", 10},
	{"cavalo", 11},
	{"corrida", 11},
	{"ferradura", 11},
	{"elefante", 12},
	{"memoria", 12},
	{"circo", 12},
	{"galo", 13},
	{"madrugada", 13},
	{"canto", 13},
	{"gato", 14},
	{"telhado", 14},
	{"misterio", 14},
	{"jacare", 15},
	{"rio", 15},
	{"pantano", 15},
	{"leao", 16},
	{"coragem", 16},
	{"juba", 16},
	{"macaco", 17},
	{"travessura", 17},
	{"banana", 17},
	{"porco", 18},
	{"lama", 18},
	{"fartura", 18},
	{"pavao", 19},
	{"vaidade", 19},
	{"espelho", 19},
	{"peru", 20},
	{"festa", 20},
	{"natal", 20},
	{"touro", 21},
	{"forca", 21},
	{"arena", 21},
	{"tigre", 22},
	{"listras", 22},
	{"selva", 22},
	{"urso", 23},
	{"inverno", 23},
	{"caverna", 23},
	{"veado", 24},
	{"floresta", 24},
	{"chifres", 24},
	{"vaca", 25},
	{"leite", 25},
	{"pasto", 25},
}

// diacritics folds the accented letters common in Portuguese dream
// descriptions so matching is spelling tolerant.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}
