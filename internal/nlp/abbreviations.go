package nlp

// abbreviations maps shorthand the public uses in chat messages to the full
// form found in the reference questions. Keys and expansions are lowercase
// with diacritics already stripped, because the table is consulted after the
// case-folding and diacritic-stripping steps. A few entries are synonym
// rewrites rather than abbreviations ("fazer" -> "solicitar"); they fold
// common phrasings onto the corpus vocabulary.
var abbreviations = map[string]string{
	"adm":    "administracao",
	"ar":     "administracao regional",
	"gdf":    "governo do distrito federal",
	"ceb":    "companhia energetica de brasilia",
	"slu":    "servico de limpeza urbana",
	"caesb":  "companhia de saneamento ambiental do distrito federal",
	"art":    "anotacao de responsabilidade tecnica",
	"sqs":    "superquadra sul",
	"alv":    "alvara",
	"docs":   "documentos",
	"pca":    "praca",
	"av":     "avenida",
	"q":      "quadra",
	"lt":     "loteamento",
	"bl":     "bloco",
	"apto":   "apartamento",
	"apt":    "apartamento",
	"coml":   "comercial",
	"estab":  "estabelecimento",
	"tel":    "telefone",
	"fone":   "telefone",
	"cel":    "celular",
	"end":    "endereco",
	"ender":  "endereco",
	"loc":    "localizacao",
	"hor":    "horario",
	"hr":     "horario",
	"func":   "funcionamento",
	"atend":  "atendimento",
	"serv":   "servico",
	"srv":    "servico",
	"solic":  "solicitacao",
	"recl":   "reclamacao",
	"reclam": "reclamacao",
	"denunc": "denuncia",
	"duv":    "duvida",
	"info":   "informacao",
	"infos":  "informacoes",
	"inf":    "informacao",
	"urg":    "urgente",
	"obg":    "obrigatorio",
	"nec":    "necessario",
	"necess": "necessario",
	"req":    "requisito",
	"requis": "requisito",

	// synonym rewrites
	"fazer":    "solicitar",
	"terrenos": "terreno",
	"baldios":  "baldio",
	"quero":    "desejo",
	"socorro":  "assistencia",
	"ajuda":    "assistencia",
}
