package vocabulary

// Abbreviation representa uma sigla médica e sua forma por extenso
type Abbreviation struct {
	Code string // sigla em maiúsculas
	Full string // termo por extenso, minúsculo
}

// SynonymGroup representa um grupo de sinônimos
type SynonymGroup struct {
	Term     string   // termo principal
	Synonyms []string // sinônimos
}

// CategoryKeywords associa uma categoria de especialidade às palavras-chave que a identificam
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

// GeneralCategory é usada quando nenhuma categoria casa
const GeneralCategory = "general"

// DefaultAbbreviations contém as siglas clínicas mais buscadas
var DefaultAbbreviations = []Abbreviation{
	// Cardiologia
	{Code: "MI", Full: "myocardial infarction"},
	{Code: "ACS", Full: "acute coronary syndrome"},
	{Code: "CAD", Full: "coronary artery disease"},
	{Code: "CHF", Full: "congestive heart failure"},
	{Code: "HTN", Full: "hypertension"},
	{Code: "AFIB", Full: "atrial fibrillation"},
	{Code: "ECG", Full: "electrocardiogram"},
	{Code: "EKG", Full: "electrocardiogram"},
	{Code: "BP", Full: "blood pressure"},
	{Code: "HR", Full: "heart rate"},

	// Neurologia
	{Code: "CVA", Full: "cerebrovascular accident"},
	{Code: "TIA", Full: "transient ischemic attack"},
	{Code: "MS", Full: "multiple sclerosis"},

	// Pneumologia
	{Code: "COPD", Full: "chronic obstructive pulmonary disease"},
	{Code: "ARDS", Full: "acute respiratory distress syndrome"},
	{Code: "PE", Full: "pulmonary embolism"},
	{Code: "TB", Full: "tuberculosis"},

	// Endocrinologia e nefrologia
	{Code: "DM", Full: "diabetes mellitus"},
	{Code: "DKA", Full: "diabetic ketoacidosis"},
	{Code: "CKD", Full: "chronic kidney disease"},
	{Code: "AKI", Full: "acute kidney injury"},

	// Outros
	{Code: "DVT", Full: "deep vein thrombosis"},
	{Code: "UTI", Full: "urinary tract infection"},
	{Code: "GERD", Full: "gastroesophageal reflux disease"},
	{Code: "ICU", Full: "intensive care unit"},
	{Code: "CPR", Full: "cardiopulmonary resuscitation"},
	{Code: "MRI", Full: "magnetic resonance imaging"},
	{Code: "CT", Full: "computed tomography"},
	{Code: "PTSD", Full: "post-traumatic stress disorder"},
	{Code: "ADHD", Full: "attention deficit hyperactivity disorder"},
}

// DefaultSynonyms contém sinônimos de condições em linguagem leiga e técnica
var DefaultSynonyms = []SynonymGroup{
	{Term: "heart attack", Synonyms: []string{"myocardial infarction", "mi", "acute coronary syndrome"}},
	{Term: "high blood pressure", Synonyms: []string{"hypertension", "htn", "elevated blood pressure"}},
	{Term: "heart failure", Synonyms: []string{"congestive heart failure", "chf", "cardiac failure"}},
	{Term: "stroke", Synonyms: []string{"cerebrovascular accident", "cva", "brain attack"}},
	{Term: "diabetes", Synonyms: []string{"diabetes mellitus", "dm", "hyperglycemia"}},
	{Term: "blood clot", Synonyms: []string{"thrombosis", "dvt", "embolism"}},
	{Term: "kidney disease", Synonyms: []string{"renal disease", "ckd", "nephropathy"}},
	{Term: "cancer", Synonyms: []string{"malignancy", "neoplasm", "tumor", "carcinoma"}},
	{Term: "asthma", Synonyms: []string{"reactive airway disease", "bronchospasm"}},
	{Term: "copd", Synonyms: []string{"chronic obstructive pulmonary disease", "emphysema", "chronic bronchitis"}},
	{Term: "pneumonia", Synonyms: []string{"lung infection", "lower respiratory tract infection"}},
	{Term: "seizure", Synonyms: []string{"convulsion", "epilepsy", "fit"}},
	{Term: "depression", Synonyms: []string{"major depressive disorder", "mdd", "low mood"}},
	{Term: "heartburn", Synonyms: []string{"gerd", "acid reflux", "gastroesophageal reflux disease"}},
	{Term: "sepsis", Synonyms: []string{"septicemia", "blood infection", "septic shock"}},
}

// DefaultCategories é a lista ORDENADA de categorias. A primeira que casar vence,
// então a ordem faz parte do comportamento.
var DefaultCategories = []CategoryKeywords{
	{Name: "cardiology", Keywords: []string{"heart", "cardiac", "cardio", "coronary", "myocardial", "hypertension", "arrhythmia", "atrial"}},
	{Name: "neurology", Keywords: []string{"brain", "neuro", "stroke", "seizure", "epilepsy", "migraine", "dementia", "parkinson"}},
	{Name: "pulmonology", Keywords: []string{"lung", "pulmonary", "respiratory", "asthma", "copd", "pneumonia", "breathing"}},
	{Name: "endocrinology", Keywords: []string{"diabetes", "thyroid", "insulin", "hormone", "endocrine", "glucose"}},
	{Name: "oncology", Keywords: []string{"cancer", "tumor", "oncology", "chemotherapy", "lymphoma", "leukemia", "metastatic"}},
	{Name: "infectious", Keywords: []string{"infection", "sepsis", "virus", "viral", "bacterial", "antibiotic", "covid", "hiv"}},
	{Name: "emergency", Keywords: []string{"emergency", "trauma", "resuscitation", "shock", "acute", "cpr"}},
	{Name: "pediatrics", Keywords: []string{"pediatric", "child", "infant", "neonatal", "adolescent"}},
	{Name: "surgery", Keywords: []string{"surgery", "surgical", "operative", "laparoscopic", "postoperative"}},
	{Name: "psychiatry", Keywords: []string{"depression", "anxiety", "psychiatric", "mental", "bipolar", "schizophrenia", "ptsd"}},
}
