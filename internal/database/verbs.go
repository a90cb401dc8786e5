package database

import "github.com/verbquiz/api/internal/model"

// IrregularVerbs returns the curated catalog (revision lists 1 and 2).
func IrregularVerbs() []model.Verb {
	return []model.Verb{
		{Infinitive: "read", PastSimple: "read", PastParticiple: "read", French: "lire"},
		{Infinitive: "go", PastSimple: "went", PastParticiple: "gone", French: "aller"},
		{Infinitive: "come", PastSimple: "came", PastParticiple: "come", French: "venir"},
		{Infinitive: "put", PastSimple: "put", PastParticiple: "put", French: "mettre"},
		{Infinitive: "sit", PastSimple: "sat", PastParticiple: "sat", French: "s'asseoir"},
		{Infinitive: "stand", PastSimple: "stood", PastParticiple: "stood", French: "se lever"},
		{Infinitive: "write", PastSimple: "wrote", PastParticiple: "written", French: "écrire"},
		{Infinitive: "be", PastSimple: "was / were", PastParticiple: "been", French: "être"},
		{Infinitive: "have", PastSimple: "had", PastParticiple: "had", French: "avoir"},
		{Infinitive: "do", PastSimple: "did", PastParticiple: "done", French: "faire"},
		{Infinitive: "choose", PastSimple: "chose", PastParticiple: "chosen", French: "choisir"},
		{Infinitive: "make", PastSimple: "made", PastParticiple: "made", French: "faire, fabriquer"},
		{Infinitive: "lose", PastSimple: "lost", PastParticiple: "lost", French: "perdre"},
		{Infinitive: "overcome", PastSimple: "overcame", PastParticiple: "overcome", French: "surmonter, vaincre"},
		{Infinitive: "hear", PastSimple: "heard", PastParticiple: "heard", French: "entendre"},
		{Infinitive: "see", PastSimple: "saw", PastParticiple: "seen", French: "voir"},
		{Infinitive: "speak", PastSimple: "spoke", PastParticiple: "spoken", French: "parler"},
		{Infinitive: "fight", PastSimple: "fought", PastParticiple: "fought", French: "se battre"},
		{Infinitive: "give", PastSimple: "gave", PastParticiple: "given", French: "donner"},
		{Infinitive: "blend", PastSimple: "blent", PastParticiple: "blent", French: "mélanger"},
		{Infinitive: "shoot", PastSimple: "shot", PastParticiple: "shot", French: "tirer"},
		{Infinitive: "know", PastSimple: "knew", PastParticiple: "known", French: "savoir, connaître"},
		{Infinitive: "run", PastSimple: "ran", PastParticiple: "run", French: "courir"},
		{Infinitive: "swim", PastSimple: "swam", PastParticiple: "swum", French: "nager"},
		{Infinitive: "rise", PastSimple: "rose", PastParticiple: "risen", French: "monter, s'élever"},
		{Infinitive: "fly", PastSimple: "flew", PastParticiple: "flown", French: "voler (dans l'air)"},
		{Infinitive: "spend", PastSimple: "spent", PastParticiple: "spent", French: "dépenser de l'argent, passer du temps"},
		{Infinitive: "sell", PastSimple: "sold", PastParticiple: "sold", French: "vendre"},
		{Infinitive: "buy", PastSimple: "bought", PastParticiple: "bought", French: "acheter"},
		{Infinitive: "become", PastSimple: "became", PastParticiple: "become", French: "devenir"},
		{Infinitive: "dream", PastSimple: "dreamt", PastParticiple: "dreamt", French: "rêver"},
		{Infinitive: "drive", PastSimple: "drove", PastParticiple: "driven", French: "conduire"},
		{Infinitive: "ride", PastSimple: "rode", PastParticiple: "ridden", French: "faire/aller à cheval, moto, vélo"},
		{Infinitive: "pay", PastSimple: "paid", PastParticiple: "paid", French: "payer"},
		{Infinitive: "cost", PastSimple: "cost", PastParticiple: "cost", French: "coûter"},
		{Infinitive: "keep", PastSimple: "kept", PastParticiple: "kept", French: "garder"},
		{Infinitive: "hit", PastSimple: "hit", PastParticiple: "hit", French: "frapper"},
		{Infinitive: "find", PastSimple: "found", PastParticiple: "found", French: "trouver"},
		{Infinitive: "wear", PastSimple: "wore", PastParticiple: "worn", French: "porter (un vêtement)"},
		{Infinitive: "tell", PastSimple: "told", PastParticiple: "told", French: "dire (à quelqu'un)"},
		{Infinitive: "say", PastSimple: "said", PastParticiple: "said", French: "dire (quelque chose)"},
		{Infinitive: "mean", PastSimple: "meant", PastParticiple: "meant", French: "signifier, vouloir dire"},
		{Infinitive: "feel", PastSimple: "felt", PastParticiple: "felt", French: "ressentir"},
		{Infinitive: "break", PastSimple: "broke", PastParticiple: "broken", French: "casser"},
		{Infinitive: "bring", PastSimple: "brought", PastParticiple: "brought", French: "apporter"},
		{Infinitive: "grow", PastSimple: "grew", PastParticiple: "grown", French: "grandir"},
		{Infinitive: "awake", PastSimple: "awoke", PastParticiple: "awoken", French: "se réveiller, se lever"},
		{Infinitive: "begin", PastSimple: "began", PastParticiple: "begun", French: "commencer"},
		{Infinitive: "learn", PastSimple: "learnt", PastParticiple: "learnt", French: "apprendre"},
		{Infinitive: "teach", PastSimple: "taught", PastParticiple: "taught", French: "enseigner"},
		{Infinitive: "leave", PastSimple: "left", PastParticiple: "left", French: "quitter, partir, laisser"},
		{Infinitive: "meet", PastSimple: "met", PastParticiple: "met", French: "rencontrer"},
		{Infinitive: "leap", PastSimple: "leapt", PastParticiple: "leapt", French: "bondir"},
	}
}
