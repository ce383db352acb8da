package dcmeta_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/reoring/dcmeta"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassifier_ConcurrentUse(t *testing.T) {
	c := dcmeta.NewClassifier(dcmeta.WithLanguage(true))
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("t%d", i)
			dir := "ltr"
			if i%2 == 1 {
				dir = "rtl"
			}
			el := dcmeta.Element{
				Namespace:  dcmeta.NS("dc"),
				Name:       "title",
				Attributes: map[string]string{"id": id, "dir": dir},
			}
			for j := 0; j < 100; j++ {
				tt, ok := c.Classify(el).(dcmeta.Title)
				if !ok || tt.ID != dcmeta.NewID(id) || tt.Dir.Raw != dir {
					errs <- fmt.Errorf("worker %d: unexpected result %#v", i, tt)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
