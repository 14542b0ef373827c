package reporters

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	log "github.com/sirupsen/logrus"
)

const (
	pagerName      = "pager"
	rawDataPrompt  = "\nWould you like to see some raw data? Enter yes or no.\n"
	rawDataHint    = "If you do not like to see some raw data again Enter no..."
	noMoreRawData  = "No more raw data to display."
	defaultPage    = 5
	defaultOffset  = 1
	tabPadding     = 2
	tabMinWidth    = 0
	tabWidth       = 8
	tabPaddingChar = ' '
)

// YesNoAsker asks the user a yes/no question
type YesNoAsker interface {
	AskYesNo(promptText string) (bool, error)
}

// PagerConfig
// + PageSize: rows shown on each page
// + StartOffset: position of the first row shown
type PagerConfig struct {
	PageSize    int `yaml:"page_size"`
	StartOffset int `yaml:"start_offset"`
}

func DefaultPagerConfig() PagerConfig {
	return PagerConfig{
		PageSize:    defaultPage,
		StartOffset: defaultOffset,
	}
}

// Pager shows the raw trips, one page per "yes"
type Pager struct {
	config PagerConfig
	asker  YesNoAsker
	out    io.Writer
}

func NewPager(config PagerConfig, asker YesNoAsker, out io.Writer) *Pager {
	if config.PageSize <= 0 {
		config.PageSize = defaultPage
	}
	if config.StartOffset < 0 {
		config.StartOffset = defaultOffset
	}

	return &Pager{
		config: config,
		asker:  asker,
		out:    out,
	}
}

// Browse prints the next page each time the user answers "yes". Any other answer, or reaching the
// end of the trips, stops it.
func (p *Pager) Browse(df dataframe.DataFrame) error {
	offset := p.config.StartOffset
	for {
		showPage, err := p.asker.AskYesNo(rawDataPrompt)
		if err != nil {
			return err
		}
		if !showPage {
			return nil
		}

		page := Page(df, offset, p.config.PageSize)
		if page.Nrow() == 0 {
			fmt.Fprintln(p.out, noMoreRawData)
			return nil
		}

		if err := p.printPage(page, offset); err != nil {
			log.Error(getLogMessage(pagerName, "Browse", "error printing page", err))
			return err
		}
		log.Debug(getLogMessage(pagerName, "Browse", fmt.Sprintf("rows %v to %v shown", offset, offset+page.Nrow()-1), nil))

		offset += p.config.PageSize
		fmt.Fprintln(p.out, rawDataHint)
	}
}

// Page returns the rows at positions [offset, offset+size). Past the end of the DataFrame the page is
// cut short, or empty when offset is beyond the last row.
func Page(df dataframe.DataFrame, offset int, size int) dataframe.DataFrame {
	if offset < 0 || size <= 0 || offset >= df.Nrow() {
		return dataframe.DataFrame{}
	}

	end := offset + size
	if end > df.Nrow() {
		end = df.Nrow()
	}

	indexes := make([]int, 0, end-offset)
	for idx := offset; idx < end; idx++ {
		indexes = append(indexes, idx)
	}
	return df.Subset(indexes)
}

// printPage prints the page as a table, each row labeled with its position in the whole DataFrame
func (p *Pager) printPage(page dataframe.DataFrame, offset int) error {
	writer := tabwriter.NewWriter(p.out, tabMinWidth, tabWidth, tabPadding, tabPaddingChar, 0)
	records := page.Records()

	fmt.Fprintln(writer, "\t"+strings.Join(records[0], "\t"))
	for idx, row := range records[1:] {
		fmt.Fprintln(writer, strconv.Itoa(offset+idx)+"\t"+strings.Join(row, "\t"))
	}
	return writer.Flush()
}
