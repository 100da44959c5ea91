package cerr

import (
	"github.com/apex/log"
)

func Log(err error) {
	if err == nil {
		return
	}

	fields := AllFields(err)
	if len(fields) == 0 {
		log.Error(err.Error())
		return
	}

	log.WithFields(log.Fields(fields)).Error(err.Error())
}
