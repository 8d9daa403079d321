package entity

// descriptors is the closed set of entity types served by the data path.
// Built once at package initialisation and treated as immutable shared data;
// this is deliberately not an extensible plugin registry.
var descriptors = []Descriptor{
	{
		Name:        "course",
		Table:       "courses",
		IDColumn:    "id",
		OwnerColumn: "user_id",
		Fields: []Field{
			{Name: "name", Kind: KindText},
		},
	},
	{
		Name:        "topic",
		Table:       "topics",
		IDColumn:    "id",
		OwnerColumn: "user_id",
		Fields: []Field{
			{Name: "course_id", Kind: KindInt},
			{Name: "name", Kind: KindText},
			{Name: "details", Kind: KindText},
		},
	},
	{
		Name:        "study_goal",
		Table:       "study_goals",
		IDColumn:    "id",
		OwnerColumn: "user_id",
		Fields: []Field{
			{Name: "topic_id", Kind: KindInt},
			{Name: "deadline", Kind: KindDate},
		},
	},
	{
		Name:        "exam",
		Table:       "exams",
		IDColumn:    "id",
		OwnerColumn: "user_id",
		Fields: []Field{
			{Name: "course_id", Kind: KindInt},
			{Name: "name", Kind: KindText},
			{Name: "date", Kind: KindDate},
		},
	},
	{
		Name:        "todo",
		Table:       "todos",
		IDColumn:    "id",
		OwnerColumn: "user_id",
		Fields: []Field{
			{Name: "name", Kind: KindText},
			{Name: "deadline", Kind: KindDate},
			{Name: "details", Kind: KindText},
			{Name: "completed", Kind: KindBool},
		},
	},
}

// byName indexes descriptors for O(1) lookup from the URL path parameter.
var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Name] = d
	}
	return m
}()

// Lookup resolves an entity name to its Descriptor. The second return value
// is false for any name outside the fixed supported set; callers map that to
// a client error.
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// All returns every registered descriptor in declaration order.
func All() []Descriptor {
	return descriptors
}
