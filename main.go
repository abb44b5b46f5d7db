package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"

	"paypalquery/cliutil"
	"paypalquery/config"
	"paypalquery/service"
	"paypalquery/utils"
)

// transactionFieldsFlag collects -txn-fields values, accepting repeats and
// comma-separated lists.
type transactionFieldsFlag struct {
	fields []service.TransactionFields
}

func (f *transactionFieldsFlag) String() string {
	return fmt.Sprintf("%v", f.fields)
}

func (f *transactionFieldsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		parsed, err := service.TransactionFieldsFromArg(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		f.fields = append(f.fields, parsed)
	}
	return nil
}

// subscriptionFieldsFlag collects -sub-fields values the same way.
type subscriptionFieldsFlag struct {
	fields []service.SubscriptionFields
}

func (f *subscriptionFieldsFlag) String() string {
	return fmt.Sprintf("%v", f.fields)
}

func (f *subscriptionFieldsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		parsed, err := service.SubscriptionFieldsFromArg(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		f.fields = append(f.fields, parsed)
	}
	return nil
}

func main() {
	log.Namespace = "paypal-query"
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("paypal-query", flag.ContinueOnError)
	begin := flags.String("begin", "", "Datetime to begin the search, in ISO 8601 format")
	end := flags.String("end", "", "Datetime to end the search, in ISO 8601 format")
	loglevel := flags.String("loglevel", "info",
		"Show logs at this level and above. Specify one of "+strings.Join(cliutil.LogLevelChoices(), ", "))
	var txnFields transactionFieldsFlag
	flags.Var(&txnFields, "txn-fields",
		"Only show these field(s) in transaction results. Repeatable. Choices are "+
			strings.Join(service.TransactionFieldChoices(), ", "))
	var subFields subscriptionFieldsFlag
	flags.Var(&subFields, "sub-fields",
		"Only show these field(s) in subscription results. Repeatable. Choices are "+
			strings.Join(service.SubscriptionFieldChoices(), ", "))

	if err := flags.Parse(args); err != nil {
		return cliutil.ExitUsage
	}

	level, err := cliutil.LogLevelFromArg(*loglevel)
	if err != nil {
		log.Error(err)
		return cliutil.ExitUsage
	}

	var startDate, endDate time.Time
	if *begin != "" {
		if startDate, err = utils.ParseDatetime(*begin); err != nil {
			log.Error(err)
			return cliutil.ExitUsage
		}
	}
	if *end != "" {
		if endDate, err = utils.ParseDatetime(*end); err != nil {
			log.Error(err)
			return cliutil.ExitUsage
		}
	}
	if endDate.IsZero() {
		endDate = time.Now().UTC()
	}

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return cliutil.ExitCode(err)
	}
	paypal, err := service.NewPayPalService(cfg)
	if err != nil {
		log.Error(err)
		return cliutil.ExitCode(err)
	}

	transactionFields := service.CombineTransactionFields(txnFields.fields)
	subscriptionFields := service.CombineSubscriptionFields(subFields.fields)

	ids := flags.Args()
	if len(ids) == 0 {
		if startDate.IsZero() {
			startDate = endDate.Add(-24 * time.Hour)
		}
		// The summary always needs the core transaction group.
		transactionFields |= service.TransactionFieldTransaction
		if level.Enabled(cliutil.LevelDebug) {
			log.Debug("listing transactions", log.Data{
				"start_date": utils.FormatDatetime(startDate),
				"end_date":   utils.FormatDatetime(endDate),
				"fields":     transactionFields.ParamValue(),
			})
		}
		iterator := paypal.IterTransactions(startDate, endDate, transactionFields)
		for iterator.Next() {
			if err = cliutil.SummarizeTransaction(iterator.Transaction(), stdout); err != nil {
				log.Error(err)
				return cliutil.ExitCode(err)
			}
		}
		if err = iterator.Err(); err != nil {
			log.Error(err)
			return cliutil.ExitCode(err)
		}
		return cliutil.ExitOK
	}

	for _, id := range ids {
		id = strings.ToUpper(id)
		if strings.HasPrefix(id, "I-") {
			subscription, err := paypal.GetSubscription(id, subscriptionFields)
			if err != nil {
				log.Error(err)
				return cliutil.ExitCode(err)
			}
			if err = cliutil.DumpSubscription(stdout, subscription); err != nil {
				log.Error(err)
				return cliutil.ExitCode(err)
			}
			continue
		}
		transaction, err := paypal.GetTransaction(id, startDate, endDate, transactionFields)
		if err != nil {
			log.Error(err)
			return cliutil.ExitCode(err)
		}
		if err = cliutil.DumpTransaction(stdout, transaction, transactionFields); err != nil {
			log.Error(err)
			return cliutil.ExitCode(err)
		}
	}
	return cliutil.ExitOK
}
