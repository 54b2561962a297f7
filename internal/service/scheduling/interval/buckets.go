package interval

// DayBuckets counts the load of each day during one batch. Due is keyed by
// day number; overdue days are folded into today. Learned is keyed by day
// offset from today (0 is today) and counts distinct cards answered that day.
type DayBuckets struct {
	Due     map[int]int
	Learned map[int]int
	today   int
}

// NewDayBuckets builds the counters for a batch starting on today.
func NewDayBuckets(today int, due, learned map[int]int) *DayBuckets {
	b := &DayBuckets{
		Due:     make(map[int]int, len(due)),
		Learned: make(map[int]int, len(learned)),
		today:   today,
	}
	for day, n := range due {
		b.Due[max(day, today)] += n
	}
	for off, n := range learned {
		b.Learned[off] = n
	}
	return b
}

// Load returns the number of cards that would be studied on day.
func (b *DayBuckets) Load(day int) int {
	n := b.Due[max(day, b.today)]
	if day <= b.today {
		n += b.Learned[0]
	}
	return n
}

// Move records that a card due on before is now due on after.
func (b *DayBuckets) Move(before, after int) {
	before, after = max(before, b.today), max(after, b.today)
	if before == after {
		return
	}
	if b.Due[before] > 0 {
		b.Due[before]--
	}
	b.Due[after]++
}
