package cli

import (
	"github.com/spf13/pflag"

	"github.com/roach88/allen/internal/allen"
	"github.com/roach88/allen/internal/ranges"
)

// domainValue is a pflag.Value for --domain.
type domainValue struct{ kind *allen.DomainKind }

var _ pflag.Value = domainValue{}

func (v domainValue) String() string {
	if v.kind == nil {
		return allen.KindDiscrete.String()
	}
	return v.kind.String()
}

func (v domainValue) Set(s string) error {
	k, err := allen.ParseDomainKind(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

func (domainValue) Type() string { return "domain" }

// strategyValue is a pflag.Value for --strategy.
type strategyValue struct{ strategy *allen.Strategy }

var _ pflag.Value = strategyValue{}

func (v strategyValue) String() string {
	if v.strategy == nil {
		return allen.Lazy.String()
	}
	return v.strategy.String()
}

func (v strategyValue) Set(s string) error {
	st, err := allen.ParseStrategy(s)
	if err != nil {
		return err
	}
	*v.strategy = st
	return nil
}

func (strategyValue) Type() string { return "strategy" }

// valueTypeValue is a pflag.Value for --type.
type valueTypeValue struct{ typ *ranges.ValueType }

var _ pflag.Value = valueTypeValue{}

func (v valueTypeValue) String() string {
	if v.typ == nil {
		return string(ranges.TypeInt)
	}
	return string(*v.typ)
}

func (v valueTypeValue) Set(s string) error {
	t, err := ranges.ParseValueType(s)
	if err != nil {
		return err
	}
	*v.typ = t
	return nil
}

func (valueTypeValue) Type() string { return "type" }

// addRangeFlags registers --domain and --type on fs.
func addRangeFlags(fs *pflag.FlagSet, domain *allen.DomainKind, typ *ranges.ValueType) {
	fs.Var(domainValue{domain}, "domain", "interval domain (discrete|continuous)")
	fs.Var(valueTypeValue{typ}, "type", "endpoint value type (int|float|time)")
}
