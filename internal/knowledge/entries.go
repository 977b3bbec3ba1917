package knowledge

import "github.com/paniermalin/backend/internal/domain"

// ingredientTable is the fixed knowledge base: canonical ingredient key ->
// synonyms, category, preferred brands (Swiss retail) and unit hints.
// Keys are lowercase without diacritics so they double as lookup keys.
var ingredientTable = map[string]domain.KnowledgeEntry{
	// Pasta & rice
	"pates": {
		Synonyms:        []string{"pâtes", "penne", "fusilli", "macaroni", "tagliatelles", "coquillettes", "farfalle"},
		Category:        domain.CategoryPasta,
		PreferredBrands: []string{"Barilla", "M-Classic", "Garofalo"},
		UnitConversions: map[string]float64{"paquet": 500},
	},
	"spaghetti": {
		Synonyms:        []string{"spaghettis", "linguine", "capellini"},
		Category:        domain.CategoryPasta,
		PreferredBrands: []string{"Barilla", "M-Classic"},
		UnitConversions: map[string]float64{"paquet": 500},
	},
	"lasagnes": {
		Synonyms:        []string{"lasagne", "feuilles de lasagne"},
		Category:        domain.CategoryPasta,
		PreferredBrands: []string{"Barilla"},
	},
	"riz": {
		Synonyms:        []string{"riz basmati", "riz complet", "riz long", "risotto", "riz arborio"},
		Category:        domain.CategoryRice,
		PreferredBrands: []string{"Uncle Ben's", "M-Classic"},
		UnitConversions: map[string]float64{"paquet": 1000},
	},
	"quinoa": {
		Synonyms: []string{"boulgour", "semoule"},
		Category: domain.CategoryRice,
	},

	// Meat
	"poulet": {
		Synonyms:        []string{"blanc de poulet", "blanc poulet", "filet de poulet", "filet poulet", "escalope de poulet", "escalope poulet", "cuisse de poulet", "cuisse poulet", "volaille"},
		Category:        domain.CategoryMeat,
		PreferredBrands: []string{"Optigal", "Coop Naturafarm"},
	},
	"boeuf": {
		Synonyms:        []string{"bœuf", "viande hachee", "viande hachée", "steak", "entrecote", "entrecôte", "roti de boeuf"},
		Category:        domain.CategoryMeat,
		PreferredBrands: []string{"Coop Naturafarm", "TerraSuisse"},
	},
	"porc": {
		Synonyms: []string{"cotelette", "côtelette", "filet mignon", "roti de porc"},
		Category: domain.CategoryMeat,
	},
	"agneau": {
		Synonyms: []string{"gigot", "cotes d'agneau"},
		Category: domain.CategoryMeat,
	},
	"lardons": {
		Synonyms: []string{"lard", "bacon", "pancetta"},
		Category: domain.CategoryMeat,
	},
	"jambon": {
		Synonyms: []string{"jambon cru", "jambon blanc", "prosciutto"},
		Category: domain.CategoryMeat,
	},

	// Fish
	"saumon": {
		Synonyms:        []string{"filet de saumon", "saumon fume", "saumon fumé", "pave de saumon"},
		Category:        domain.CategoryFish,
		PreferredBrands: []string{"Pelican"},
	},
	"thon": {
		Synonyms: []string{"thon en boite", "thon a l'huile", "steak de thon"},
		Category: domain.CategoryFish,
	},
	"crevettes": {
		Synonyms: []string{"crevette", "gambas"},
		Category: domain.CategoryFish,
	},
	"cabillaud": {
		Synonyms: []string{"filet de cabillaud", "colin", "lieu"},
		Category: domain.CategoryFish,
	},

	// Vegetables
	"tomate": {
		Synonyms: []string{"tomates", "tomates cerises", "tomates pelees", "tomates pelées"},
		Category: domain.CategoryVegetables,
	},
	"ail": {
		Synonyms:        []string{"gousse d'ail", "gousses d'ail", "tete d'ail"},
		Category:        domain.CategoryVegetables,
		UnitConversions: map[string]float64{"gousse(s)": 5},
	},
	"oignon": {
		Synonyms: []string{"oignons", "echalote", "échalote", "oignon rouge", "oignon jaune"},
		Category: domain.CategoryVegetables,
	},
	"carotte": {
		Synonyms: []string{"carottes"},
		Category: domain.CategoryVegetables,
	},
	"courgette": {
		Synonyms: []string{"courgettes"},
		Category: domain.CategoryVegetables,
	},
	"aubergine": {
		Synonyms: []string{"aubergines"},
		Category: domain.CategoryVegetables,
	},
	"poivron": {
		Synonyms: []string{"poivrons", "poivron rouge", "poivron jaune", "poivron vert"},
		Category: domain.CategoryVegetables,
	},
	"champignon": {
		Synonyms: []string{"champignons", "champignons de paris", "bolets", "chanterelles"},
		Category: domain.CategoryVegetables,
	},
	"pomme de terre": {
		Synonyms: []string{"pommes de terre", "patate", "patates", "rattes"},
		Category: domain.CategoryVegetables,
	},
	"salade": {
		Synonyms: []string{"laitue", "roquette", "mache", "mâche", "batavia"},
		Category: domain.CategoryVegetables,
	},
	"epinards": {
		Synonyms: []string{"épinards", "epinard", "pousses d'epinards"},
		Category: domain.CategoryVegetables,
	},
	"brocoli": {
		Synonyms: []string{"brocolis", "chou-fleur", "chou"},
		Category: domain.CategoryVegetables,
	},
	"haricots verts": {
		Synonyms: []string{"haricot vert", "haricots"},
		Category: domain.CategoryVegetables,
	},
	"poireau": {
		Synonyms: []string{"poireaux"},
		Category: domain.CategoryVegetables,
	},
	"concombre": {
		Synonyms: []string{"concombres"},
		Category: domain.CategoryVegetables,
	},

	// Fruit
	"citron": {
		Synonyms: []string{"citrons", "citron vert", "jus de citron", "zeste de citron"},
		Category: domain.CategoryFruit,
	},
	"pomme": {
		Synonyms: []string{"pommes", "pomme golden", "pomme gala"},
		Category: domain.CategoryFruit,
	},
	"banane": {
		Synonyms: []string{"bananes"},
		Category: domain.CategoryFruit,
	},
	"orange": {
		Synonyms: []string{"oranges", "jus d'orange", "clementine", "clémentine"},
		Category: domain.CategoryFruit,
	},
	"avocat": {
		Synonyms: []string{"avocats"},
		Category: domain.CategoryFruit,
	},

	// Dairy
	"lait": {
		Synonyms:        []string{"lait entier", "lait demi-ecreme", "lait demi-écrémé"},
		Category:        domain.CategoryDairy,
		PreferredBrands: []string{"Valflora", "Coop Qualité & Prix"},
		UnitConversions: map[string]float64{"brique": 1000},
	},
	"beurre": {
		Synonyms:        []string{"beurre doux", "beurre sale", "beurre salé"},
		Category:        domain.CategoryDairy,
		PreferredBrands: []string{"Floralp", "Valflora"},
	},
	"creme": {
		Synonyms: []string{"crème", "creme fraiche", "crème fraîche", "creme entiere", "demi-creme"},
		Category: domain.CategoryDairy,
	},
	"fromage": {
		Synonyms:        []string{"gruyere", "gruyère", "emmental", "parmesan", "mozzarella", "fromage rape", "fromage râpé", "raclette"},
		Category:        domain.CategoryDairy,
		PreferredBrands: []string{"Le Gruyère AOP", "Galbani"},
	},
	"yaourt": {
		Synonyms: []string{"yogourt", "yoghourt", "yaourt nature", "yaourt grec"},
		Category: domain.CategoryDairy,
	},
	"oeuf": {
		Synonyms:        []string{"œuf", "oeufs", "œufs", "oeufs frais"},
		Category:        domain.CategoryDairy,
		PreferredBrands: []string{"Coop Naturafarm"},
		UnitConversions: map[string]float64{"boite": 6},
	},

	// Pantry
	"farine": {
		Synonyms: []string{"farine blanche", "farine complete", "farine d'epeautre"},
		Category: domain.CategoryPantry,
	},
	"sucre": {
		Synonyms: []string{"sucre en poudre", "sucre glace", "sucre roux", "cassonade"},
		Category: domain.CategoryPantry,
	},
	"sel": {
		Synonyms: []string{"sel fin", "gros sel", "fleur de sel"},
		Category: domain.CategoryPantry,
	},
	"poivre": {
		Synonyms: []string{"poivre noir", "poivre blanc", "poivre du moulin"},
		Category: domain.CategoryPantry,
	},
	"huile d'olive": {
		Synonyms:        []string{"huile olive", "huile d'olive extra vierge"},
		Category:        domain.CategoryPantry,
		PreferredBrands: []string{"Monini", "Filippo Berio"},
	},
	"huile": {
		Synonyms: []string{"huile de tournesol", "huile de colza", "huile vegetale"},
		Category: domain.CategoryPantry,
	},
	"vinaigre": {
		Synonyms: []string{"vinaigre balsamique", "vinaigre de vin", "vinaigre de cidre"},
		Category: domain.CategoryPantry,
	},
	"moutarde": {
		Synonyms: []string{"moutarde de dijon", "moutarde a l'ancienne"},
		Category: domain.CategoryPantry,
	},
	"bouillon": {
		Synonyms: []string{"cube de bouillon", "bouillon de legumes", "bouillon de poule"},
		Category: domain.CategoryPantry,
	},
	"concentre de tomates": {
		Synonyms: []string{"concentré de tomates", "puree de tomates", "purée de tomates", "passata", "coulis de tomates"},
		Category: domain.CategoryPantry,
	},
	"lentilles": {
		Synonyms: []string{"lentilles vertes", "lentilles corail", "pois chiches"},
		Category: domain.CategoryPantry,
	},
	"chocolat": {
		Synonyms:        []string{"chocolat noir", "chocolat au lait", "pepites de chocolat"},
		Category:        domain.CategoryPantry,
		PreferredBrands: []string{"Cailler", "Frey", "Lindt"},
	},

	// Herbs & aromatics
	"basilic": {
		Synonyms:        []string{"basilic frais", "feuilles de basilic"},
		Category:        domain.CategoryHerbs,
		UnitConversions: map[string]float64{"botte": 25},
	},
	"persil": {
		Synonyms:        []string{"persil plat", "persil frise", "persil frisé"},
		Category:        domain.CategoryHerbs,
		UnitConversions: map[string]float64{"botte": 25},
	},
	"thym": {
		Synonyms: []string{"thym frais", "branche de thym"},
		Category: domain.CategoryHerbs,
	},
	"laurier": {
		Synonyms: []string{"feuille de laurier", "feuilles de laurier"},
		Category: domain.CategoryHerbs,
	},
	"coriandre": {
		Synonyms: []string{"coriandre fraiche", "coriandre fraîche"},
		Category: domain.CategoryHerbs,
	},
	"ciboulette": {
		Synonyms: []string{"cebette"},
		Category: domain.CategoryHerbs,
	},
	"romarin": {
		Synonyms: []string{"branche de romarin"},
		Category: domain.CategoryHerbs,
	},
	"gingembre": {
		Synonyms: []string{"gingembre frais", "racine de gingembre"},
		Category: domain.CategoryHerbs,
	},
	"curry": {
		Synonyms: []string{"pate de curry", "poudre de curry", "curcuma", "paprika", "cumin"},
		Category: domain.CategoryHerbs,
	},

	// Bakery
	"pain": {
		Synonyms: []string{"baguette", "pain complet", "pain de mie", "pain aux cereales"},
		Category: domain.CategoryBakery,
	},
	"pate feuilletee": {
		Synonyms: []string{"pâte feuilletée", "pate brisee", "pâte brisée", "pate a pizza", "pâte à pizza"},
		Category: domain.CategoryBakery,
	},

	// Nuts
	"amandes": {
		Synonyms: []string{"amande", "amandes effilees", "poudre d'amandes"},
		Category: domain.CategoryNuts,
	},
	"noix": {
		Synonyms: []string{"cerneaux de noix", "noisettes", "noix de cajou", "pignons", "pignons de pin"},
		Category: domain.CategoryNuts,
	},
}
