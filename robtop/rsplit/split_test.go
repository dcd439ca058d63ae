package rsplit_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rsplit"
)

const (
	levelOne   = "1:10:2:L1:3:SGVsbG8:6:100:35:0"
	levelTwo   = "1:11:2:L2:6:200:35:555"
	creatorOne = "100:Alice:9000"
	creatorTwo = "200:Bob:9001"
	songOne    = "1~|~555~|~2~|~Song~|~10~|~https%3A%2F%2Fexample.com%2F555.mp3"
	songTwo    = "1~|~777~|~2~|~Other"
)

func search(levels, creators, songs []string, rest ...string) string {
	parts := []string{
		strings.Join(levels, "|"),
		strings.Join(creators, "|"),
		strings.Join(songs, "~:~"),
	}
	return strings.Join(append(parts, rest...), "#")
}

var _ = Describe("Composite splitter", func() {
	Describe("SplitAndJoin", func() {
		It("joins L1 with C1 and no song", func() {
			entities, err := rsplit.SplitAndJoin(search(
				[]string{levelOne, levelTwo},
				[]string{creatorOne, creatorTwo},
				[]string{songOne, songTwo},
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))
			Expect(entities[0].Creator).To(Equal(&rsplit.Creator{PlayerID: 100, Name: "Alice", AccountID: 9000}))
			Expect(entities[0].Song).To(BeNil())
		})

		It("resolves the custom song by id", func() {
			entities, err := rsplit.SplitAndJoin(search(
				[]string{levelOne, levelTwo},
				[]string{creatorOne, creatorTwo},
				[]string{songTwo, songOne},
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(entities[1].Creator.Name).To(Equal("Bob"))
			Expect(entities[1].Song).NotTo(BeNil())
			name, _ := entities[1].Song.GetText("2")
			Expect(name).To(Equal("Song"))
		})

		It("decodes the encoded entity fields", func() {
			entities, err := rsplit.SplitAndJoin(search([]string{levelOne}, []string{creatorOne}, nil))

			Expect(err).NotTo(HaveOccurred())
			description, ok := entities[0].Entity.GetText("3")
			Expect(ok).To(BeTrue())
			Expect(description).To(Equal("Hello"))
		})

		It("keeps entities whose creator or song is missing", func() {
			entities, err := rsplit.SplitAndJoin(search(
				[]string{levelOne, levelTwo},
				[]string{creatorOne},
				[]string{songTwo},
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))
			Expect(entities[1].Creator).To(BeNil())
			Expect(entities[1].Song).To(BeNil())
		})

		It("takes the first creator when ids repeat", func() {
			entities, err := rsplit.SplitAndJoin(search(
				[]string{levelOne},
				[]string{"100:First:1", "100:Second:2"},
				nil,
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(entities[0].Creator.Name).To(Equal("First"))
		})

		It("matches creator ids exactly", func() {
			entities, err := rsplit.SplitAndJoin(search(
				[]string{levelOne},
				[]string{"1000:Prefix:1"},
				nil,
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(entities[0].Creator).To(BeNil())
		})

		It("accepts a response without a songs segment", func() {
			entities, err := rsplit.SplitAndJoin(levelOne + "#" + creatorOne)

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(1))
			Expect(entities[0].Creator).NotTo(BeNil())
		})

		It("joins a creator written with commas", func() {
			entities, err := rsplit.SplitAndJoin(levelOne + "#100,Alice,9000")

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(1))
			Expect(entities[0].Creator).To(Equal(&rsplit.Creator{PlayerID: 100, Name: "Alice", AccountID: 9000}))
		})

		DescribeTable("rejects malformed responses",
			func(text string) {
				_, err := rsplit.SplitAndJoin(text)

				var malformed rsplit.MalformedResponseError
				Expect(err).To(BeAssignableToTypeOf(malformed))
			},
			Entry("empty", ""),
			Entry("blank", " \n"),
			Entry("rejected", "-1"),
			Entry("without creators", levelOne),
		)
	})

	Describe("SplitSearch", func() {
		It("reads the page info and the hash", func() {
			result, err := rsplit.Splitter{}.SplitSearch(search(
				[]string{levelOne},
				[]string{creatorOne},
				[]string{songOne},
				"9999:10:10",
				"abcdef",
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Page).To(Equal(&rsplit.PageInfo{Total: 9999, Offset: 10, Amount: 10}))
			Expect(result.Hash).To(Equal("abcdef"))
		})

		It("fails on a broken page info", func() {
			_, err := rsplit.Splitter{}.SplitSearch(search(
				[]string{levelOne},
				[]string{creatorOne},
				nil,
				"9999:ten",
			))

			Expect(err).To(BeAssignableToTypeOf(rsplit.MalformedResponseError{}))
		})

		It("logs join misses at debug level", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			splitter := rsplit.Splitter{Logger: zap.New(core)}

			_, err := splitter.SplitSearch(search([]string{levelTwo}, nil, nil))

			Expect(err).NotTo(HaveOccurred())
			Expect(logs.FilterMessage("creator not found").Len()).To(Equal(1))
			Expect(logs.FilterMessage("song not found").Len()).To(Equal(1))
		})
	})

	Describe("ParseCreator", func() {
		It("reads all three parts", func() {
			creator, ok := rsplit.ParseCreator(creatorTwo)

			Expect(ok).To(BeTrue())
			Expect(creator).To(Equal(rsplit.Creator{PlayerID: 200, Name: "Bob", AccountID: 9001}))
		})

		It("tolerates missing parts", func() {
			creator, ok := rsplit.ParseCreator("200")

			Expect(ok).To(BeTrue())
			Expect(creator).To(Equal(rsplit.Creator{PlayerID: 200}))
		})

		It("needs a numeric player id", func() {
			_, ok := rsplit.ParseCreator("Bob:200")

			Expect(ok).To(BeFalse())
		})

		DescribeTable("accepts either separator",
			func(text string, expected rsplit.Creator) {
				creator, ok := rsplit.ParseCreator(text)

				Expect(ok).To(BeTrue())
				Expect(creator).To(Equal(expected))
			},
			Entry("colon", "100:Alice:9000", rsplit.Creator{PlayerID: 100, Name: "Alice", AccountID: 9000}),
			Entry("comma", "100,Alice,9000", rsplit.Creator{PlayerID: 100, Name: "Alice", AccountID: 9000}),
			Entry("comma without account", "100,Alice", rsplit.Creator{PlayerID: 100, Name: "Alice"}),
			Entry("colon wins over a comma in the name", "100:A,B:9000", rsplit.Creator{PlayerID: 100, Name: "A,B", AccountID: 9000}),
		)

		It("needs a numeric player id in the comma form", func() {
			_, ok := rsplit.ParseCreator("Bob,200")

			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Single entity responses", func() {
	Describe("SplitLevel", func() {
		var data string

		BeforeEach(func() {
			var err error
			data, err = rcrypt.Encode("kS38,1_40_2_125", rcrypt.SchemeBase64Inflate, "")
			Expect(err).NotTo(HaveOccurred())
		})

		It("inflates the level data", func() {
			level, err := rsplit.SplitLevel("1:128:2:1:4:" + data + ":27:0#hash#hash2")

			Expect(err).NotTo(HaveOccurred())
			levelData, _ := level.GetText("4")
			Expect(levelData).To(Equal("kS38,1_40_2_125"))
			password, _ := level.Get("27")
			Expect(password).To(Equal(0))
		})

		It("requires the level data", func() {
			_, err := rsplit.SplitLevel("1:128:2:1")

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SplitSong", func() {
		It("reads one song", func() {
			song, err := rsplit.SplitSong(songOne)

			Expect(err).NotTo(HaveOccurred())
			Expect(song.Codes()).To(Equal([]string{"1", "2", "10"}))
			id, _ := song.GetInt("1")
			Expect(id).To(Equal(555))
		})

		DescribeTable("rejects the error answers",
			func(text string) {
				_, err := rsplit.SplitSong(text)

				Expect(err).To(BeAssignableToTypeOf(rsplit.MalformedResponseError{}))
			},
			Entry("not found", "-1"),
			Entry("not allowed", "-2"),
			Entry("no id", "2~|~Name"),
		)
	})

	Describe("SplitUser", func() {
		It("tokenizes the user fields", func() {
			user, err := rsplit.SplitUser("1:Alice:2:100:16:9000")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.IntOr("16", 0)).To(Equal(9000))
		})
	})

	Describe("SplitComments", func() {
		It("pairs comments with their authors", func() {
			entries, page, err := rsplit.SplitComments(
				"2~SGVsbG8~3~100~4~5:1~Alice~16~9000|2~V29ybGQ~3~101#20:0:10",
			)

			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			content, _ := entries[0].Comment.GetText("2")
			Expect(content).To(Equal("Hello"))
			name, _ := entries[0].User.GetText("1")
			Expect(name).To(Equal("Alice"))

			content, _ = entries[1].Comment.GetText("2")
			Expect(content).To(Equal("World"))
			Expect(entries[1].User).To(BeNil())

			Expect(page).To(Equal(&rsplit.PageInfo{Total: 20, Offset: 0, Amount: 10}))
		})

		It("has no page without a page segment", func() {
			entries, page, err := rsplit.SplitComments("2~SGVsbG8~3~100")

			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(page).To(BeNil())
		})
	})
})
