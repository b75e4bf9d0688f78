package catalog

// defaultEntries is the compiled-in catalog in legacy order.
//
// The abbreviations are, per book, the minimal unique prefix amongst all
// names, the standard three letter abbreviation where the prefix does not
// already cover it (so that pasted references parse), and a few further
// unique two letter forms.
//
// Matthew follows Malachi at legacy index 41, see GapIndex.
var defaultEntries = []BookEntry{
	{Name: "Genesis", ChapterCount: 50, Abbreviations: []string{"Ge"}},
	{Name: "Exodus", ChapterCount: 40, Abbreviations: []string{"Ex"}},
	{Name: "Leviticus", ChapterCount: 27, Abbreviations: []string{"Le"}},
	{Name: "Numbers", ChapterCount: 36, Abbreviations: []string{"Nu"}},
	{Name: "Deuteronomy", ChapterCount: 34, Abbreviations: []string{"De", "Dt"}},
	{Name: "Joshua", ChapterCount: 24, Abbreviations: []string{"Jos", "Js"}},
	{Name: "Judges", ChapterCount: 21, Abbreviations: []string{"Judg", "Jdg", "Jg"}},
	{Name: "Ruth", ChapterCount: 4, Abbreviations: []string{"Ru"}},
	{Name: "1 Samuel", ChapterCount: 31, Abbreviations: []string{"1 S", "1S"}},
	{Name: "2 Samuel", ChapterCount: 24, Abbreviations: []string{"2 S", "2S"}},
	{Name: "1 Kings", ChapterCount: 22, Abbreviations: []string{"1 K", "1K"}},
	{Name: "2 Kings", ChapterCount: 25, Abbreviations: []string{"2 K", "2K"}},
	{Name: "1 Chronicles", ChapterCount: 29, Abbreviations: []string{"1 Ch", "1Ch"}},
	{Name: "2 Chronicles", ChapterCount: 36, Abbreviations: []string{"2 Ch", "2Ch"}},
	{Name: "Ezra", ChapterCount: 10, Abbreviations: []string{"Ezr", "Er"}},
	{Name: "Nehemiah", ChapterCount: 13, Abbreviations: []string{"Ne"}},
	{Name: "Esther", ChapterCount: 10, Abbreviations: []string{"Es"}},
	{Name: "Job", ChapterCount: 42, Abbreviations: []string{"Job", "Jb"}},
	{Name: "Psalms", ChapterCount: 150, Abbreviations: []string{"Ps"}},
	{Name: "Proverbs", ChapterCount: 31, Abbreviations: []string{"Pr"}},
	{Name: "Ecclesiastes", ChapterCount: 12, Abbreviations: []string{"Ec"}},
	{Name: "Song of Songs", ChapterCount: 8, Abbreviations: []string{"S", "Sng"}},
	{Name: "Isaiah", ChapterCount: 66, Abbreviations: []string{"Is"}},
	{Name: "Jeremiah", ChapterCount: 52, Abbreviations: []string{"Je"}},
	{Name: "Lamentations", ChapterCount: 5, Abbreviations: []string{"La"}},
	{Name: "Ezekiel", ChapterCount: 48, Abbreviations: []string{"Eze", "Ezk", "Ek"}},
	{Name: "Daniel", ChapterCount: 12, Abbreviations: []string{"Da"}},
	{Name: "Hosea", ChapterCount: 14, Abbreviations: []string{"Ho"}},
	{Name: "Joel", ChapterCount: 3, Abbreviations: []string{"Joe", "Jol", "Jl"}},
	{Name: "Amos", ChapterCount: 9, Abbreviations: []string{"Am"}},
	{Name: "Obadiah", ChapterCount: 1, Abbreviations: []string{"O"}},
	{Name: "Jonah", ChapterCount: 4, Abbreviations: []string{"Jon"}},
	{Name: "Micah", ChapterCount: 7, Abbreviations: []string{"Mi"}},
	{Name: "Nahum", ChapterCount: 3, Abbreviations: []string{"Na", "Nam"}},
	{Name: "Habakkuk", ChapterCount: 3, Abbreviations: []string{"Hab", "Hb"}},
	{Name: "Zephaniah", ChapterCount: 3, Abbreviations: []string{"Zep", "Zp"}},
	{Name: "Haggai", ChapterCount: 2, Abbreviations: []string{"Hag", "Hg"}},
	{Name: "Zechariah", ChapterCount: 14, Abbreviations: []string{"Zec", "Zc"}},
	{Name: "Malachi", ChapterCount: 3, Abbreviations: []string{"Mal", "Ml"}},

	{Name: "Matthew", ChapterCount: 28, Abbreviations: []string{"Mat", "Mt"}},
	{Name: "Mark", ChapterCount: 16, Abbreviations: []string{"Mar", "Mrk", "Mk"}},
	{Name: "Luke", ChapterCount: 24, Abbreviations: []string{"Lu", "Lk"}},
	{Name: "John", ChapterCount: 21, Abbreviations: []string{"Joh", "Jhn", "Jn"}},
	{Name: "Acts", ChapterCount: 28, Abbreviations: []string{"Ac"}},
	{Name: "Romans", ChapterCount: 16, Abbreviations: []string{"Ro"}},
	{Name: "1 Corinthians", ChapterCount: 16, Abbreviations: []string{"1 Co", "1Co"}},
	{Name: "2 Corinthians", ChapterCount: 13, Abbreviations: []string{"2 Co", "2Co"}},
	{Name: "Galatians", ChapterCount: 6, Abbreviations: []string{"Ga"}},
	{Name: "Ephesians", ChapterCount: 6, Abbreviations: []string{"Ep"}},
	{Name: "Philippians", ChapterCount: 4, Abbreviations: []string{"Phili", "Php", "Pp"}},
	{Name: "Colossians", ChapterCount: 4, Abbreviations: []string{"C"}},
	{Name: "1 Thessalonians", ChapterCount: 5, Abbreviations: []string{"1 Th", "1Th"}},
	{Name: "2 Thessalonians", ChapterCount: 3, Abbreviations: []string{"2 Th", "2Th"}},
	{Name: "1 Timothy", ChapterCount: 6, Abbreviations: []string{"1 Ti", "1Ti"}},
	{Name: "2 Timothy", ChapterCount: 4, Abbreviations: []string{"2 Ti", "2Ti"}},
	{Name: "Titus", ChapterCount: 3, Abbreviations: []string{"T"}},
	{Name: "Philemon", ChapterCount: 1, Abbreviations: []string{"Phile", "Phm", "Pm"}},
	{Name: "Hebrews", ChapterCount: 13, Abbreviations: []string{"He"}},
	{Name: "James", ChapterCount: 5, Abbreviations: []string{"Ja", "Jas"}},
	{Name: "1 Peter", ChapterCount: 5, Abbreviations: []string{"1 P", "1P"}},
	{Name: "2 Peter", ChapterCount: 3, Abbreviations: []string{"2 P", "2P"}},
	{Name: "1 John", ChapterCount: 5, Abbreviations: []string{"1 J", "1Jn", "1J"}},
	{Name: "2 John", ChapterCount: 1, Abbreviations: []string{"2 J", "2Jn", "2J"}},
	{Name: "3 John", ChapterCount: 1, Abbreviations: []string{"3", "3Jn"}},
	{Name: "Jude", ChapterCount: 1, Abbreviations: []string{"Jude", "Jd"}},
	{Name: "Revelation", ChapterCount: 22, Abbreviations: []string{"Re"}},
}
